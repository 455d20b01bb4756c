//go:build linux || darwin

package filelock

import (
	"os"

	"golang.org/x/sys/unix"
)

// acquireOSLock takes an exclusive flock on lockPath, blocking until it is
// available. The returned function releases the lock and closes the file.
func acquireOSLock(lockPath string) (func(), error) {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
