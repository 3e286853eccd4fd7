package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetDebug toggles debug-level output on every sink.
	SetDebug(enable bool)
	// SetOutput redirects terminal output. Nil restores stderr.
	SetOutput(w io.Writer)
	// Close flushes and closes the log file, if one is attached.
	Close() error
}
