// Package sudo holds the privileged-access password for one run and keeps
// the sudo session alive while updates execute.
package sudo

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/zerr"
)

// State is the lifecycle position of the held credential.
type State string

const (
	// StateEmpty means no password has been entered yet.
	StateEmpty State = "empty"
	// StatePrompted means the user is being asked for the password.
	StatePrompted State = "prompted"
	// StateValidated means sudo accepted the password.
	StateValidated State = "validated"
	// StateInvalid means sudo rejected the last entry.
	StateInvalid State = "invalid"
)

// Prompt is shown when asking for the password.
const Prompt = "Password: "

// Holder implements ports.Credential on top of sudo.
type Holder struct {
	runner   ports.CommandRunner
	prompter ports.Prompter
	logger   ports.Logger
	attempts int
	interval time.Duration

	mu     sync.Mutex
	state  State
	secret *domain.Secret
	closed bool
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Holder.
type Option func(*Holder)

// WithAttempts caps how many passwords are tried before giving up.
func WithAttempts(n int) Option {
	return func(h *Holder) {
		if n > 0 {
			h.attempts = n
		}
	}
}

// WithRefreshInterval sets how often the sudo session is re-asserted.
func WithRefreshInterval(d time.Duration) Option {
	return func(h *Holder) {
		if d > 0 {
			h.interval = d
		}
	}
}

// New creates an empty Holder.
func New(runner ports.CommandRunner, prompter ports.Prompter, logger ports.Logger, opts ...Option) *Holder {
	h := &Holder{
		runner:   runner,
		prompter: prompter,
		logger:   logger,
		attempts: domain.DefaultCredentialAttempts,
		interval: domain.DefaultRefreshInterval,
		state:    StateEmpty,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// State returns the current credential state.
func (h *Holder) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Get returns the validated secret. The user is prompted only while no
// secret is held; concurrent callers wait for the first prompt to finish.
func (h *Holder) Get(ctx context.Context) (*domain.Secret, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, zerr.Wrap(domain.ErrCredentialRequired, "credential holder closed")
	}
	if h.state == StateValidated {
		return h.secret, nil
	}

	for attempt := 1; attempt <= h.attempts; attempt++ {
		h.state = StatePrompted

		pw, err := h.prompter.ReadSecret(ctx, Prompt)
		if err != nil {
			h.state = StateEmpty
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, errors.Join(domain.ErrCredentialRequired, err)
		}

		secret := domain.NewSecret(pw)
		res := h.runner.Run(ctx, validateCommand(secret))

		switch {
		case res.Success():
			h.state = StateValidated
			h.secret = secret
			h.logger.Debug("sudo password accepted")
			h.startRefresh()
			return secret, nil
		case res.SpawnFailed():
			secret.Clear()
			h.state = StateEmpty
			return nil, errors.Join(domain.ErrPrivilegeUnavailable, res.Err)
		case ctx.Err() != nil:
			secret.Clear()
			h.state = StateEmpty
			return nil, ctx.Err()
		}

		secret.Clear()
		h.state = StateInvalid
		h.logger.Warn("Sorry, try again. (attempt " + strconv.Itoa(attempt) + " of " + strconv.Itoa(h.attempts) + ")")
	}

	return nil, zerr.With(domain.ErrCredentialRejected, "attempts", h.attempts)
}

// startRefresh launches the keep-alive loop. Must be called with h.mu held.
func (h *Holder) startRefresh() {
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.done = make(chan struct{})

	go h.refreshLoop(ctx, h.secret, h.done)
}

func (h *Holder) refreshLoop(ctx context.Context, secret *domain.Secret, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := h.runner.Run(ctx, refreshCommand(secret))
			if ctx.Err() != nil {
				return
			}
			if !res.Success() {
				h.logger.Warn("sudo refresh failed: " + res.Detail())
			}
		}
	}
}

// Close stops the refresh loop and wipes the secret. It is safe to call
// more than once.
func (h *Holder) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	cancel, done := h.cancel, h.done
	h.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.secret != nil {
		h.secret.Clear()
		h.secret = nil
	}
	h.state = StateEmpty
	return nil
}

func validateCommand(secret *domain.Secret) domain.Command {
	cmd := domain.NewCommand("sudo", "-S", "-k", "-p", "", "true")
	cmd.Secret = secret
	return cmd
}

func refreshCommand(secret *domain.Secret) domain.Command {
	cmd := domain.NewCommand("sudo", "-S", "-p", "", "-v")
	cmd.Secret = secret
	return cmd
}
