package ecosystem

import (
	"context"
	"errors"
	"math/rand/v2"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// CleanupQuestion is asked before pruning the Homebrew cache interactively.
const CleanupQuestion = "Cleanup Homebrew?"

// Homebrew updates formulae and casks.
type Homebrew struct {
	Deps
	// roll returns a number in [0, n). The maintenance check runs on 0.
	roll func(n int) int
}

// NewHomebrew creates the Homebrew updater.
func NewHomebrew(d Deps) *Homebrew {
	return &Homebrew{Deps: d, roll: rand.IntN}
}

// Name implements ports.Updater.
func (h *Homebrew) Name() string { return domain.TaskHomebrew }

// RequiresCredential implements ports.Updater.
func (h *Homebrew) RequiresCredential() bool { return false }

// Applicable implements ports.Updater.
func (h *Homebrew) Applicable(host ports.Host) bool {
	goos := host.OS()
	return (goos == osLinux || goos == osDarwin) && host.HasCommand("brew")
}

// Run implements ports.Updater.
func (h *Homebrew) Run(ctx context.Context, req ports.UpdateRequest) error {
	seq := h.sequence()

	h.maintenance(ctx, seq)

	h.Logger.Info("Updating Homebrew")
	seq.Run(ctx, domain.NewCommand("brew", "update"))
	seq.Run(ctx, domain.NewCommand("brew", "upgrade"))
	if h.Host.OS() == osDarwin {
		seq.Run(ctx, domain.NewCommand("brew", "upgrade", "--cask", "--greedy"))
	}

	if !seq.Halted() && h.wantsCleanup(ctx, req) {
		h.Logger.Info("Running brew cleanup")
		seq.Run(ctx, domain.NewCommand("brew", "cleanup"))
		seq.Run(ctx, domain.NewCommand("brew", "cleanup", "-s", "--prune=all"))
	}

	return seq.Err(ctx)
}

// maintenance occasionally runs brew doctor. Its verdict is informational.
func (h *Homebrew) maintenance(ctx context.Context, seq *sequence) {
	chance := h.Config.MaintenanceChance
	if chance <= 0 || h.roll(chance) != 0 {
		return
	}

	h.Logger.Info("Running brew doctor")
	if res, ok := seq.Try(ctx, domain.NewCommand("brew", "doctor")); !ok && !res.SpawnFailed() {
		h.Logger.Info("brew doctor reported issues: " + res.Detail())
	}
}

func (h *Homebrew) wantsCleanup(ctx context.Context, req ports.UpdateRequest) bool {
	switch h.Config.Cleanup {
	case domain.CleanupNever:
		return false
	case domain.CleanupAlways:
		return true
	}

	if !req.Options.Interactive || req.Prompter == nil {
		return true
	}

	yes, err := req.Prompter.Confirm(ctx, CleanupQuestion)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			h.Logger.Warn("skipping Homebrew cleanup: " + err.Error())
		}
		return false
	}
	return yes
}
