package document

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// TOMLStore persists settings documents as TOML files.
//
// The on-disk layout is a single [configuration] table whose sub-tables are
// sections, each holding an array of item tables:
//
//	[[configuration.packageSources]]
//	key = "nuget.org"
//	[configuration.packageSources.attributes]
//	value = "https://api.nuget.org/v3/index.json"
type TOMLStore struct {
	fs FileSystem
}

// NewTOMLStore creates a TOML store backed by the OS file system.
func NewTOMLStore() *TOMLStore {
	return &TOMLStore{fs: DefaultFS()}
}

// NewTOMLStoreWithFS creates a TOML store with a custom file system.
func NewTOMLStoreWithFS(fs FileSystem) *TOMLStore {
	return &TOMLStore{fs: fs}
}

// tomlItem is the serialized form of an Item.
type tomlItem struct {
	Key        string            `toml:"key"`
	Attributes map[string]string `toml:"attributes,omitempty"`
	Items      []tomlItem        `toml:"item,omitempty"`
}

// tomlDocument is the serialized form of a Root.
type tomlDocument struct {
	Configuration map[string][]tomlItem `toml:"configuration"`
}

// Load reads and parses the document at path.
// Returns nil, nil if the file doesn't exist.
func (s *TOMLStore) Load(path string) (*Root, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
	}

	root := NewRoot()

	// Map iteration order is random; load sections in sorted order so
	// repeated loads of the same file build identical roots.
	names := make([]string, 0, len(doc.Configuration))
	for name := range doc.Configuration {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		section := NewSection(name)
		for i := range doc.Configuration[name] {
			section.Upsert(fromTOMLItem(&doc.Configuration[name][i]))
		}
		root.AddSection(section)
	}

	return root, nil
}

// Save writes the document to path.
// The data is written to a temporary file first and moved into place, so a
// failed write never leaves the target partially overwritten.
func (s *TOMLStore) Save(root *Root, path string) error {
	doc := tomlDocument{Configuration: make(map[string][]tomlItem)}
	for _, name := range root.SectionNames() {
		section, _ := root.Section(name)
		items := make([]tomlItem, 0, section.Len())
		for _, it := range section.Items() {
			items = append(items, toTOMLItem(it))
		}
		doc.Configuration[name] = items
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding settings file %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file %s: %w", path, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replacing settings file %s: %w", path, err)
	}

	return nil
}

// fromTOMLItem converts a serialized item to an Item.
func fromTOMLItem(ti *tomlItem) *Item {
	item := NewItem(ti.Key, ti.Attributes)
	for i := range ti.Items {
		item.Children = append(item.Children, fromTOMLItem(&ti.Items[i]))
	}
	return item
}

// toTOMLItem converts an Item to its serialized form.
func toTOMLItem(it *Item) tomlItem {
	ti := tomlItem{
		Key:        it.Key,
		Attributes: it.Attributes,
	}
	for _, child := range it.Children {
		ti.Items = append(ti.Items, toTOMLItem(child))
	}
	return ti
}

// ParseError represents an error while parsing a settings file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
