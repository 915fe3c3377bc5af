// Package instance keeps a single copy of the app running. Two instances
// would both see every chord and switch the layout twice.
package instance

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrAlreadyRunning is returned when another process holds the lock.
var ErrAlreadyRunning = errors.New("instance: another copy is already running")

// Lock is a held single-instance lock.
type Lock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path, creating parent directories as needed.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}
	return &Lock{file: f, path: path}, nil
}

// Release drops the lock and removes the file.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockFile(l.file)
	err := l.file.Close()
	l.file = nil
	os.Remove(l.path)
	return err
}
