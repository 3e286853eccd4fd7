// Package ecosystem implements one updater per package ecosystem.
package ecosystem

import (
	"context"
	"errors"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/zerr"
)

// sequence runs the sub-steps of one ecosystem update in order and folds
// their failures into a single error.
type sequence struct {
	runner ports.CommandRunner
	logger ports.Logger
	policy domain.StepFailurePolicy

	failures []error
	halted   bool
}

func newSequence(runner ports.CommandRunner, logger ports.Logger, policy domain.StepFailurePolicy) *sequence {
	return &sequence{runner: runner, logger: logger, policy: policy}
}

// Run executes cmd unless the sequence has halted. A failure is logged and
// counted against the update.
func (s *sequence) Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, bool) {
	res, ran := s.exec(ctx, cmd)
	if !ran {
		return res, false
	}
	if !res.Success() {
		s.fail(ctx, cmd, res)
		return res, false
	}
	return res, true
}

// Try executes cmd like Run, but a non-zero exit is only logged at debug
// level and never counted. Probes and optional fallbacks use it.
func (s *sequence) Try(ctx context.Context, cmd domain.Command) (domain.CommandResult, bool) {
	res, ran := s.exec(ctx, cmd)
	if !ran {
		return res, false
	}
	if res.SpawnFailed() {
		s.fail(ctx, cmd, res)
		return res, false
	}
	if !res.Success() {
		s.logger.Debug(cmd.String() + " failed: " + res.Detail())
		return res, false
	}
	return res, true
}

func (s *sequence) exec(ctx context.Context, cmd domain.Command) (domain.CommandResult, bool) {
	if s.halted {
		return domain.CommandResult{}, false
	}
	if err := ctx.Err(); err != nil {
		s.halted = true
		return domain.CommandResult{ExitCode: -1, Err: err}, false
	}

	res := s.runner.Run(ctx, cmd)

	// Nothing after a spawn failure or a cancellation can succeed.
	if res.SpawnFailed() || ctx.Err() != nil {
		s.halted = true
	}
	return res, true
}

func (s *sequence) fail(ctx context.Context, cmd domain.Command, res domain.CommandResult) {
	if ctx.Err() != nil {
		return
	}

	s.logger.Warn("Error running " + cmd.String() + ": " + res.Detail())

	err := zerr.Wrap(domain.ErrStepFailed, cmd.String())
	err = zerr.With(err, "exit_code", res.ExitCode)
	err = zerr.With(err, "detail", res.Detail())
	s.failures = append(s.failures, err)

	if s.policy == domain.StepFailureAbort {
		s.halted = true
	}
}

// Halted reports whether later steps will be skipped.
func (s *sequence) Halted() bool {
	return s.halted
}

// Failed reports whether any counted step failed.
func (s *sequence) Failed() bool {
	return len(s.failures) > 0
}

// Err returns ctx's error on cancellation, a joined ErrStepsFailed when any
// counted step failed, or nil.
func (s *sequence) Err(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(s.failures) == 0 {
		return nil
	}
	return errors.Join(append([]error{domain.ErrStepsFailed}, s.failures...)...)
}
