// Package filelock provides exclusive, path-keyed locking around file
// operations.
//
// A Locker serializes every caller that uses the same lock convention for a
// given file, across goroutines in one process and across processes on one
// machine. Acquisition blocks until the lock is available; there is no
// timeout. The lock is released on every exit path, including when the
// guarded callback returns an error.
package filelock

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Locker runs a callback while holding exclusive access to a path.
type Locker interface {
	// WithLock runs fn while holding the exclusive lock for path.
	// The lock is released before WithLock returns, on success and error
	// alike. WithLock is not reentrant: calling it again for the same path
	// from inside fn deadlocks.
	WithLock(path string, fn func() error) error
}

// PathLocker is the default Locker. In-process callers are serialized by a
// per-path mutex; cross-process exclusion uses an OS lock on a ".lock" file
// next to the target.
type PathLocker struct {
	mutexes sync.Map // abs path -> *sync.Mutex
}

// New creates a PathLocker.
func New() *PathLocker {
	return &PathLocker{}
}

// WithLock runs fn while holding the exclusive lock for path.
func (l *PathLocker) WithLock(path string, fn func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving lock path %s: %w", path, err)
	}

	mu := l.mutexFor(abs)
	mu.Lock()
	defer mu.Unlock()

	release, err := acquireOSLock(abs + ".lock")
	if err != nil {
		return fmt.Errorf("locking %s: %w", abs, err)
	}
	defer release()

	return fn()
}

// mutexFor returns the in-process mutex for an absolute path.
func (l *PathLocker) mutexFor(abs string) *sync.Mutex {
	mu, _ := l.mutexes.LoadOrStore(abs, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
