package settings

import (
	"errors"
	"fmt"
)

// Errors returned by settings operations.
var (
	// ErrEmptyDirectory indicates an empty directory path was given to Open.
	ErrEmptyDirectory = errors.New("directory path must not be empty")

	// ErrEmptyFileName indicates an empty file name was given to Open.
	ErrEmptyFileName = errors.New("file name must not be empty")

	// ErrPathLikeFileName indicates the file name contains path separators.
	ErrPathLikeFileName = errors.New("file name must not contain path separators")

	// ErrMachineWide indicates a mutation was attempted on a machine-wide file.
	ErrMachineWide = errors.New("machine-wide settings file is read-only")

	// ErrSectionNotFound indicates the named section doesn't exist.
	ErrSectionNotFound = errors.New("section not found")

	// ErrItemNotFound indicates the item doesn't exist in the section.
	ErrItemNotFound = errors.New("item not found")

	// ErrNilItem indicates a nil item was passed to a mutation.
	ErrNilItem = errors.New("item must not be nil")
)

// FileError is the single error kind for every failure while loading,
// parsing, or saving a settings file. It carries the offending absolute path
// and preserves the original failure as the cause; callers are expected to
// handle only this kind.
type FileError struct {
	// Path is the absolute path of the settings file.
	Path string
	// Op is the failed operation: "read" or "write".
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("could not %s configuration file at %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}
