package document

import (
	"io/fs"
	"os"
)

// Store loads and saves settings documents.
//
// Load returns nil, nil when the file does not exist; the caller decides
// whether a missing document is an error. Implementations must be idempotent
// on repeated loads of an unmodified file.
type Store interface {
	// Load reads and parses the document at path.
	// Returns nil, nil if the file doesn't exist.
	Load(path string) (*Root, error)

	// Save writes the document to path, replacing any existing content.
	// Existing content must not be left partially overwritten on failure.
	Save(root *Root, path string) error
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile writes data to path, creating the file if needed.
	WriteFile(path string, data []byte, perm fs.FileMode) error
	// Rename atomically replaces newpath with oldpath.
	Rename(oldpath, newpath string) error
	// Remove deletes the file at path.
	Remove(path string) error
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path, creating the file if needed.
func (OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Rename atomically replaces newpath with oldpath.
func (OSFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove deletes the file at path.
func (OSFS) Remove(path string) error {
	return os.Remove(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}
