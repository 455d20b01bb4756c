package settings

import (
	"path/filepath"
	"strings"

	"github.com/robsonj/confstack/internal/settings/document"
	"github.com/robsonj/confstack/internal/settings/filelock"
)

// defaultLocker is shared by every File that doesn't inject its own Locker,
// so two Files opened on the same path serialize against each other.
var defaultLocker = filelock.New()

// File is one on-disk settings file.
//
// A File owns its document tree; mutations happen in memory and reach disk
// only through Save. Files participate in an override chain via Link.
type File struct {
	directory string
	fileName  string
	path      string

	machineWide bool
	dirty       bool

	root *document.Root
	next *File

	store  document.Store
	locker filelock.Locker
}

// Option configures a File before it is loaded.
type Option func(*File)

// WithMachineWide marks the file as machine-wide. Machine-wide files reject
// all mutations.
func WithMachineWide() Option {
	return func(f *File) {
		f.machineWide = true
	}
}

// WithStore sets the document store used to load and save the file.
func WithStore(store document.Store) Option {
	return func(f *File) {
		f.store = store
	}
}

// WithLocker sets the lock capability guarding disk access.
func WithLocker(locker filelock.Locker) Option {
	return func(f *File) {
		f.locker = locker
	}
}

// Open loads the settings file at directory/fileName, or creates an empty
// in-memory document when no file exists. Nothing is written to disk until a
// mutation is saved.
//
// The load runs under the exclusive lock for the file's absolute path, so a
// concurrent writer is never observed mid-write. Any I/O or parse failure is
// returned as a *FileError.
func Open(directory, fileName string, opts ...Option) (*File, error) {
	if strings.TrimSpace(directory) == "" {
		return nil, ErrEmptyDirectory
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, ErrEmptyFileName
	}
	if fileName != filepath.Base(fileName) || strings.ContainsAny(fileName, `/\`) {
		return nil, ErrPathLikeFileName
	}

	path, err := filepath.Abs(filepath.Join(directory, fileName))
	if err != nil {
		return nil, &FileError{Path: filepath.Join(directory, fileName), Op: "read", Err: err}
	}

	f := &File{
		directory: directory,
		fileName:  fileName,
		path:      path,
		store:     document.NewTOMLStore(),
		locker:    defaultLocker,
	}
	for _, opt := range opts {
		opt(f)
	}

	err = f.locker.WithLock(path, func() error {
		root, err := f.store.Load(path)
		if err != nil {
			return err
		}
		if root == nil {
			root = document.NewRoot()
		}
		f.root = root
		return nil
	})
	if err != nil {
		return nil, &FileError{Path: path, Op: "read", Err: err}
	}

	return f, nil
}

// DirectoryPath returns the directory the file lives in.
func (f *File) DirectoryPath() string {
	return f.directory
}

// FileName returns the file's name within its directory.
func (f *File) FileName() string {
	return f.fileName
}

// Path returns the absolute path of the settings file.
func (f *File) Path() string {
	return f.path
}

// IsDirty reports whether the file has unsaved mutations.
func (f *File) IsDirty() bool {
	return f.dirty
}

// IsMachineWide reports whether the file is machine-wide (read-only).
func (f *File) IsMachineWide() bool {
	return f.machineWide
}

// Next returns the next, more authoritative file in the override chain, or
// nil for the most authoritative file.
func (f *File) Next() *File {
	return f.next
}

// IsEmpty reports whether the file's document has no sections.
func (f *File) IsEmpty() bool {
	return f.root.IsEmpty()
}

// Section returns the named section from this file's own tree.
// It does not consult the chain. Returns ErrSectionNotFound when absent.
func (f *File) Section(name string) (*document.Section, error) {
	section, ok := f.root.Section(name)
	if !ok {
		return nil, ErrSectionNotFound
	}
	return section, nil
}

// LookupSection is the boolean variant of Section.
func (f *File) LookupSection(name string) (*document.Section, bool) {
	return f.root.Section(name)
}

// AddOrUpdate inserts the item into the named section, creating the section
// if needed. An existing item with the same key is updated in place; a new
// item is appended, preserving insertion order. Marks the file dirty.
//
// Returns ErrMachineWide for machine-wide files.
func (f *File) AddOrUpdate(sectionName string, item *document.Item) error {
	if f.machineWide {
		return ErrMachineWide
	}
	if item == nil {
		return ErrNilItem
	}

	section, ok := f.root.Section(sectionName)
	if !ok {
		section = document.NewSection(sectionName)
		f.root.AddSection(section)
	}
	section.Upsert(item)
	f.dirty = true

	return nil
}

// Remove deletes the item from the named section. When the removal leaves
// the section empty, the section itself is removed. Marks the file dirty.
//
// Returns ErrSectionNotFound or ErrItemNotFound when the target is absent,
// leaving the dirty flag untouched, and ErrMachineWide for machine-wide
// files.
func (f *File) Remove(sectionName string, item *document.Item) error {
	if f.machineWide {
		return ErrMachineWide
	}
	if item == nil {
		return ErrNilItem
	}

	section, ok := f.root.Section(sectionName)
	if !ok {
		return ErrSectionNotFound
	}
	if !section.Remove(item.Key) {
		return ErrItemNotFound
	}
	if section.Len() == 0 {
		f.root.RemoveSection(sectionName)
	}
	f.dirty = true

	return nil
}

// Save writes the document to disk. A clean file is a no-op: the store
// receives no write at all. The write runs under the exclusive lock for the
// file's path, and any failure is returned as a *FileError. On success the
// file is clean again.
func (f *File) Save() error {
	if !f.dirty {
		return nil
	}

	err := f.locker.WithLock(f.path, func() error {
		return f.store.Save(f.root, f.path)
	})
	if err != nil {
		return &FileError{Path: f.path, Op: "write", Err: err}
	}

	f.dirty = false
	return nil
}
