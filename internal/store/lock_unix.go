//go:build unix

package store

import (
	"fmt"
	"os"
	"syscall"
)

// acquireLock takes an exclusive advisory lock on the whole file,
// blocking until the lock is granted.
func acquireLock(f *os.File) error {
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	return nil
}

// releaseLock releases the advisory lock on the file.
func releaseLock(f *os.File) error {
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_UN); err != nil {
		return fmt.Errorf("failed to unlock file: %w", err)
	}
	return nil
}
