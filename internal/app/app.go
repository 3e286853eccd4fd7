// Package app implements the application layer for upkeep.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/upkeep/internal/adapters/detector"
	"go.trai.ch/upkeep/internal/adapters/ecosystem"
	"go.trai.ch/upkeep/internal/adapters/linear"
	"go.trai.ch/upkeep/internal/adapters/sudo"
	"go.trai.ch/upkeep/internal/adapters/table"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/upkeep/internal/engine/orchestrator"
	"go.trai.ch/upkeep/internal/engine/status"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	lock         ports.RunLock
	runner       ports.CommandRunner
	host         ports.Host
	prompter     ports.Prompter
	orchestrator *orchestrator.Orchestrator
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	lock ports.RunLock,
	runner ports.CommandRunner,
	host ports.Host,
	prompter ports.Prompter,
	orch *orchestrator.Orchestrator,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		lock:         lock,
		runner:       runner,
		host:         host,
		prompter:     prompter,
		orchestrator: orch,
		out:          os.Stdout,
	}
}

// WithOutput redirects the status board. Output that is not a terminal
// file always gets the linear renderer in auto mode.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run performs one update run: load config, take the run lock, then update
// every applicable ecosystem.
func (a *App) Run(ctx context.Context, opts domain.RunOptions) error {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	a.logger.SetDebug(opts.Debug)

	// 2. Take the run lock
	if err := a.acquire(ctx, cfg); err != nil {
		return err
	}
	defer func() {
		if err := a.lock.Release(); err != nil {
			a.logger.Warn("failed to release run lock: " + err.Error())
		}
	}()

	// 3. Build the status board
	updaters := ecosystem.Catalogue(ecosystem.Deps{
		Runner: a.runner,
		Logger: a.logger,
		Config: cfg,
		Host:   a.host,
	})
	board := status.NewBoard(a.renderer(opts.OutputMode), ecosystem.TaskNames(updaters)...)
	board.OnRenderError(func(err error) {
		a.logger.Debug("status render failed: " + err.Error())
	})
	board.Render()

	// 4. The credential lives for exactly one run
	holder := sudo.New(a.runner, a.prompter, a.logger,
		sudo.WithAttempts(cfg.CredentialAttempts),
		sudo.WithRefreshInterval(cfg.RefreshInterval),
	)
	defer func() {
		_ = holder.Close()
	}()

	// 5. Run the updaters
	summary, err := a.orchestrator.Run(ctx, orchestrator.Plan{
		Updaters:   updaters,
		Board:      board,
		Credential: holder,
		Prompter:   a.prompter,
		Options:    opts,
		Config:     cfg,
	})
	a.logger.Info("Summary: " + summary.String())
	return err
}

func (a *App) acquire(ctx context.Context, cfg *domain.Config) error {
	lockCtx, cancel := context.WithTimeout(ctx, cfg.LockTimeout)
	defer cancel()

	err := a.lock.Acquire(lockCtx)
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return domain.ErrInterrupted
	case errors.Is(err, domain.ErrAlreadyRunning):
		return err
	default:
		return errors.Join(domain.ErrLockFailed, err)
	}
}

func (a *App) renderer(flag string) ports.StatusRenderer {
	f, _ := a.out.(*os.File)
	mode := detector.ResolveMode(detector.DetectEnvironment(f), flag)
	a.logger.Debug("output mode: " + mode.String())
	if mode == detector.ModeTable {
		return table.NewRenderer(a.out)
	}
	return linear.NewRenderer(a.out)
}
