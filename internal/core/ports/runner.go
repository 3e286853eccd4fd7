// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/upkeep/internal/core/domain"
)

// CommandRunner executes external commands.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and waits for it to finish.
	//
	// A non-zero exit status is reported in the result, never as a panic or
	// separate error. When the process cannot be spawned the result carries
	// domain.ExitCodeSpawnFailure and the cause in Err.
	Run(ctx context.Context, cmd domain.Command) domain.CommandResult
}
