// Package main is the entry point for upkeep.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/upkeep/cmd/upkeep/commands"
	"go.trai.ch/upkeep/internal/app"
	"go.trai.ch/upkeep/internal/core/domain"
	_ "go.trai.ch/upkeep/internal/wiring"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Logger.Close() }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	err = cli.Execute(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrInterrupted), errors.Is(err, context.Canceled), ctx.Err() != nil:
		_, _ = fmt.Fprintln(stderr, "\nInterrupted by user. Exiting gracefully...")
		return exitInterrupted
	case errors.Is(err, domain.ErrAlreadyRunning):
		_, _ = fmt.Fprintln(stderr, domain.ErrAlreadyRunning.Error()+". Exiting...")
		return exitFailure
	case errors.Is(err, domain.ErrUpdatesFailed):
		// Failed tasks are already on the board and in the log.
		return exitFailure
	default:
		components.Logger.Error(err)
		return exitFailure
	}
}
