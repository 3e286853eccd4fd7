// Package orchestrator drives the ecosystem updaters for one run.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/upkeep/internal/engine/status"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Plan is everything one run needs.
type Plan struct {
	Updaters   []ports.Updater
	Board      *status.Board
	Credential ports.Credential
	Prompter   ports.Prompter
	Options    domain.RunOptions
	Config     *domain.Config
}

// Summary counts the final task states of a run.
type Summary struct {
	Done    int
	Failed  int
	Skipped int
	// Pending counts tasks that never left not_started, for example after
	// an interrupt during interactive prompting.
	Pending int
	// FailedTasks lists the failed tasks in board order.
	FailedTasks []string
}

// String renders the summary as a single log line.
func (s Summary) String() string {
	parts := []string{
		fmt.Sprintf("%d done", s.Done),
		fmt.Sprintf("%d failed", s.Failed),
		fmt.Sprintf("%d skipped", s.Skipped),
	}
	if s.Pending > 0 {
		parts = append(parts, fmt.Sprintf("%d not started", s.Pending))
	}
	return strings.Join(parts, ", ")
}

// Orchestrator selects the applicable updaters and dispatches them.
type Orchestrator struct {
	host   ports.Host
	logger ports.Logger
}

// New creates an Orchestrator for host.
func New(host ports.Host, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		host:   host,
		logger: logger,
	}
}

// Discover splits updaters into those that should run and those that are
// unavailable on this host or disabled in cfg. Order is preserved.
func (o *Orchestrator) Discover(updaters []ports.Updater, cfg *domain.Config) (selected, skipped []ports.Updater) {
	for _, u := range updaters {
		switch {
		case cfg != nil && cfg.IsDisabled(u.Name()):
			o.logger.Debug(u.Name() + ": disabled in config")
			skipped = append(skipped, u)
		case !u.Applicable(o.host):
			o.logger.Debug(u.Name() + ": not available on this host")
			skipped = append(skipped, u)
		default:
			selected = append(selected, u)
		}
	}
	return selected, skipped
}

// Run executes plan and reports the final state counts.
//
// It returns domain.ErrInterrupted when ctx is cancelled and
// domain.ErrUpdatesFailed when any task failed. A credential failure is
// returned as is.
func (o *Orchestrator) Run(ctx context.Context, plan Plan) (Summary, error) {
	selected, skipped := o.Discover(plan.Updaters, plan.Config)
	for _, u := range skipped {
		o.mark(plan.Board, u.Name(), domain.StateSkipped)
	}

	var err error
	if plan.Options.Interactive {
		err = o.runInteractive(ctx, plan, selected)
	} else {
		err = o.runAll(ctx, plan, selected)
	}

	if ctx.Err() != nil {
		for _, name := range plan.Board.FailInProgress() {
			o.logger.Warn(name + ": interrupted")
		}
		return summarize(plan.Board), domain.ErrInterrupted
	}
	if err != nil {
		return summarize(plan.Board), err
	}

	summary := summarize(plan.Board)
	if summary.Failed > 0 {
		return summary, domain.ErrUpdatesFailed
	}
	return summary, nil
}

// runAll dispatches every selected updater at once. The group carries no
// shared context, so one failure never cancels the others.
func (o *Orchestrator) runAll(ctx context.Context, plan Plan, selected []ports.Updater) error {
	var secret *domain.Secret
	if needsCredential(selected) {
		var err error
		secret, err = plan.Credential.Get(ctx)
		if err != nil {
			return err
		}
	}

	var g errgroup.Group
	for _, u := range selected {
		g.Go(func() error {
			o.dispatch(ctx, plan, u, secret)
			return nil
		})
	}
	return g.Wait()
}

// runInteractive asks before each updater and runs the accepted ones one at
// a time, since the prompt owns the terminal.
func (o *Orchestrator) runInteractive(ctx context.Context, plan Plan, selected []ports.Updater) error {
	var secret *domain.Secret
	for i, u := range selected {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ok, err := plan.Prompter.Confirm(ctx, "Update "+u.Name()+"?")
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			o.skipRest(plan.Board, selected[i:])
			return err
		}
		if !ok {
			o.mark(plan.Board, u.Name(), domain.StateSkipped)
			continue
		}

		if u.RequiresCredential() && secret == nil {
			secret, err = plan.Credential.Get(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				o.skipRest(plan.Board, selected[i:])
				return err
			}
		}
		o.dispatch(ctx, plan, u, secret)
	}
	return nil
}

func (o *Orchestrator) dispatch(ctx context.Context, plan Plan, u ports.Updater, secret *domain.Secret) {
	name := u.Name()
	if !o.mark(plan.Board, name, domain.StateInProgress) {
		return
	}

	req := ports.UpdateRequest{
		Options:  plan.Options,
		Prompter: plan.Prompter,
	}
	if u.RequiresCredential() {
		req.Secret = secret
	}

	err := u.Run(ctx, req)
	switch {
	case err == nil:
		o.mark(plan.Board, name, domain.StateDone)
	case ctx.Err() != nil:
		// FailInProgress settles the task once every worker has returned.
	default:
		o.logger.Error(zerr.With(zerr.Wrap(err, name+" update failed"), "task", name))
		o.mark(plan.Board, name, domain.StateFailed)
	}
}

func (o *Orchestrator) skipRest(board *status.Board, rest []ports.Updater) {
	for _, u := range rest {
		o.mark(board, u.Name(), domain.StateSkipped)
	}
}

// mark applies a board transition and reports whether it was accepted.
func (o *Orchestrator) mark(board *status.Board, name string, state domain.TaskState) bool {
	if err := board.Update(name, state); err != nil {
		o.logger.Warn(err.Error())
		return false
	}
	return true
}

func needsCredential(updaters []ports.Updater) bool {
	for _, u := range updaters {
		if u.RequiresCredential() {
			return true
		}
	}
	return false
}

func summarize(board *status.Board) Summary {
	var s Summary
	for _, task := range board.Snapshot() {
		switch task.State {
		case domain.StateDone:
			s.Done++
		case domain.StateFailed:
			s.Failed++
			s.FailedTasks = append(s.FailedTasks, task.Name)
		case domain.StateSkipped:
			s.Skipped++
		default:
			s.Pending++
		}
	}
	return s
}
