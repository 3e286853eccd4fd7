package ports

import "context"

// RunLock guards against concurrent runs on the same machine.
//
//go:generate mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type RunLock interface {
	// Acquire takes the lock, waiting at most until ctx is done.
	// It returns domain.ErrAlreadyRunning when another process holds it.
	Acquire(ctx context.Context) error

	// Release drops the lock.
	Release() error
}
