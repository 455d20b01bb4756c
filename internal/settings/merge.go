package settings

import (
	"github.com/robsonj/confstack/internal/settings/document"
)

// MergeSectionsInto folds this file's sections into target, then recurses
// into Next so every more authoritative file is folded after it.
//
// Start the walk at the least authoritative file of a linked chain: because
// more authoritative files fold later, their items replace earlier values for
// the same key, whole-item, while non-conflicting items from every file are
// kept. Sections present in only one file pass through unchanged.
//
// Everything placed in target is deep-cloned. The aggregate can be mutated
// freely without affecting any file's tree, and merging never changes a
// file's tree or dirty flag.
func (f *File) MergeSectionsInto(target map[string]*document.Section) {
	if f == nil || target == nil {
		return
	}

	for _, name := range f.root.SectionNames() {
		section, _ := f.root.Section(name)
		aggregate, ok := target[name]
		if !ok {
			target[name] = section.Clone()
			continue
		}
		for _, item := range section.Items() {
			aggregate.Upsert(item)
		}
	}

	if f.next != nil {
		f.next.MergeSectionsInto(target)
	}
}
