// Package document provides the in-memory tree for a single settings file.
//
// A parsed settings file is a Root holding named Sections, each an ordered
// collection of Items. Items carry a key (their identity), string attributes,
// and optional nested child items. The schema of item content is owned by the
// callers; this package only provides the generic container and its
// persistence through a Store.
package document

// Root is the "configuration" root of one settings document.
// It maps section names to sections and preserves insertion order.
type Root struct {
	sections map[string]*Section
	order    []string
}

// NewRoot creates an empty document root.
func NewRoot() *Root {
	return &Root{
		sections: make(map[string]*Section),
	}
}

// Section returns the named section, if present.
func (r *Root) Section(name string) (*Section, bool) {
	s, ok := r.sections[name]
	return s, ok
}

// AddSection adds a section to the root.
// An existing section with the same name is replaced in place.
func (r *Root) AddSection(s *Section) {
	if s == nil {
		return
	}
	if _, exists := r.sections[s.Name]; !exists {
		r.order = append(r.order, s.Name)
	}
	r.sections[s.Name] = s
}

// RemoveSection removes the named section.
// Returns true if the section was found and removed.
func (r *Root) RemoveSection(name string) bool {
	if _, ok := r.sections[name]; !ok {
		return false
	}
	delete(r.sections, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// SectionNames returns the section names in insertion order.
func (r *Root) SectionNames() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of sections.
func (r *Root) Len() int {
	return len(r.sections)
}

// IsEmpty reports whether the root has no sections.
func (r *Root) IsEmpty() bool {
	return r == nil || len(r.sections) == 0
}

// Clone creates a deep copy of the root.
func (r *Root) Clone() *Root {
	if r == nil {
		return nil
	}
	dst := NewRoot()
	for _, name := range r.order {
		dst.AddSection(r.sections[name].Clone())
	}
	return dst
}

// Section is a named, ordered collection of items.
type Section struct {
	// Name identifies the section (e.g., "packageSources").
	Name string

	items []*Item
}

// NewSection creates a section with the given items.
// Items are cloned; the section never aliases caller-owned values.
func NewSection(name string, items ...*Item) *Section {
	s := &Section{Name: name}
	for _, it := range items {
		s.Upsert(it)
	}
	return s
}

// Items returns the section's items in insertion order.
// The returned slice is a copy; the items themselves are live references.
func (s *Section) Items() []*Item {
	items := make([]*Item, len(s.items))
	copy(items, s.items)
	return items
}

// Item returns the item with the given key, if present.
func (s *Section) Item(key string) (*Item, bool) {
	for _, it := range s.items {
		if it.Key == key {
			return it, true
		}
	}
	return nil, false
}

// Upsert inserts an item or, when an item with the same key already exists,
// replaces its attributes and children in place. Insertion order is
// preserved; an updated item keeps its original position. The stored item is
// a deep copy of the argument.
// Returns true when an existing item was updated.
func (s *Section) Upsert(item *Item) bool {
	if item == nil {
		return false
	}
	for _, existing := range s.items {
		if existing.Key == item.Key {
			existing.set(item)
			return true
		}
	}
	s.items = append(s.items, item.Clone())
	return false
}

// Remove deletes the item with the given key.
// Returns true if the item was found and removed.
func (s *Section) Remove(key string) bool {
	for i, it := range s.items {
		if it.Key == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of items in the section.
func (s *Section) Len() int {
	return len(s.items)
}

// Clone creates a deep copy of the section.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	dst := &Section{
		Name:  s.Name,
		items: make([]*Item, len(s.items)),
	}
	for i, it := range s.items {
		dst.items[i] = it.Clone()
	}
	return dst
}

// Item is a settable entry within a section.
// The key is the item's identity: two items with the same key in the same
// section are the same item for update and removal purposes.
type Item struct {
	// Key identifies the item within its section.
	Key string

	// Attributes holds the item's named values.
	Attributes map[string]string

	// Children holds nested items.
	Children []*Item
}

// NewItem creates an item with the given key and attributes.
func NewItem(key string, attributes map[string]string) *Item {
	return &Item{
		Key:        key,
		Attributes: cloneAttributes(attributes),
	}
}

// Clone creates a deep copy of the item.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	dst := &Item{
		Key:        it.Key,
		Attributes: cloneAttributes(it.Attributes),
	}
	if it.Children != nil {
		dst.Children = make([]*Item, len(it.Children))
		for i, child := range it.Children {
			dst.Children[i] = child.Clone()
		}
	}
	return dst
}

// set replaces the item's attributes and children with deep copies of the
// other item's values. The key is unchanged.
func (it *Item) set(other *Item) {
	it.Attributes = cloneAttributes(other.Attributes)
	it.Children = nil
	if other.Children != nil {
		it.Children = make([]*Item, len(other.Children))
		for i, child := range other.Children {
			it.Children[i] = child.Clone()
		}
	}
}

// cloneAttributes creates a copy of an attribute map.
func cloneAttributes(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
