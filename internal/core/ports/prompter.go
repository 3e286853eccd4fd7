package ports

import "context"

// Prompter asks the user questions on the controlling terminal.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Confirm asks a yes/no question. Anything but "y" or "yes" means no.
	Confirm(ctx context.Context, question string) (bool, error)

	// ReadSecret reads a line without echoing it. The caller owns the bytes.
	ReadSecret(ctx context.Context, prompt string) ([]byte, error)
}
