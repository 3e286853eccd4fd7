package ports

import (
	"context"

	"go.trai.ch/upkeep/internal/core/domain"
)

// UpdateRequest carries everything an updater needs for one run.
type UpdateRequest struct {
	Options domain.RunOptions
	// Secret is the validated sudo password. Nil unless RequiresCredential.
	Secret *domain.Secret
	// Prompter is used for interactive sub-decisions such as cleanup.
	Prompter Prompter
}

// Updater updates one package ecosystem.
//
//go:generate mockgen -source=updater.go -destination=mocks/mock_updater.go -package=mocks
type Updater interface {
	// Name is the task name shown on the status board.
	Name() string

	// RequiresCredential reports whether Run needs the sudo password.
	RequiresCredential() bool

	// Applicable reports whether the ecosystem's tooling exists on host.
	Applicable(host Host) bool

	// Run performs the update. Sub-step failures are logged and folded into a
	// single returned error; cancellation returns ctx's error.
	Run(ctx context.Context, req UpdateRequest) error
}
