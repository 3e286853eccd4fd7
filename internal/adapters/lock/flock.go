// Package lock provides the single-instance run lock.
package lock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/zerr"
)

// retryDelay is the pause between non-blocking lock attempts.
const retryDelay = 50 * time.Millisecond

// File implements ports.RunLock with an advisory OS file lock.
type File struct {
	path string
	lock *flock.Flock
}

// New creates a run lock backed by the file at path.
// The file is created on first Acquire and left in place afterwards.
func New(path string) *File {
	return &File{
		path: path,
		lock: flock.New(path),
	}
}

// Acquire polls for the lock until ctx is done. Running out of time is
// reported as domain.ErrAlreadyRunning, a cancelled ctx as its own error.
func (f *File) Acquire(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", f.path)
	}

	ok, err := f.lock.TryLockContext(ctx, retryDelay)
	switch {
	case ok:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrAlreadyRunning
	case errors.Is(err, context.Canceled):
		return err
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", f.path)
	default:
		return domain.ErrAlreadyRunning
	}
}

// Release drops the lock. Releasing an unheld lock is a no-op.
func (f *File) Release() error {
	if err := f.lock.Unlock(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to release run lock"), "path", f.path)
	}
	return nil
}
