//go:build !linux && !darwin

package filelock

import (
	"os"
	"time"
)

// lockRetryInterval is how long to wait between attempts to create the lock
// file on platforms without flock.
const lockRetryInterval = 10 * time.Millisecond

// acquireOSLock creates lockPath exclusively, retrying until it succeeds.
// The returned function removes the lock file.
func acquireOSLock(lockPath string) (func(), error) {
	for {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			_ = f.Close()
			return func() {
				_ = os.Remove(lockPath)
			}, nil
		}
		if !os.IsExist(err) {
			return nil, err
		}
		time.Sleep(lockRetryInterval)
	}
}
