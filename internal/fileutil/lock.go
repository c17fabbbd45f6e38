// Package fileutil holds small filesystem helpers shared by the command.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockName is the lock file created inside a locked directory.
const LockName = ".phoneclip.lock"

// ErrLocked is returned when another process holds the directory lock.
var ErrLocked = errors.New("directory is locked by another phoneclip run")

// DirLock is an exclusive advisory lock on a directory.
type DirLock struct {
	lock *flock.Flock
}

// LockDir creates dir if needed and takes its lock without waiting.
func LockDir(dir string) (*DirLock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %q: %w", dir, err)
	}
	l := flock.New(filepath.Join(dir, LockName))
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", dir, ErrLocked)
	}
	return &DirLock{lock: l}, nil
}

// Unlock releases the lock. It is safe to call on a nil lock.
func (d *DirLock) Unlock() error {
	if d == nil {
		return nil
	}
	return d.lock.Unlock()
}
