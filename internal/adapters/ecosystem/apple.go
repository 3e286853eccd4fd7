package ecosystem

import (
	"context"
	"strings"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

const noNewSoftware = "No new software available"

// Apple installs macOS software updates and, when mas is installed, App
// Store updates.
type Apple struct {
	Deps
}

// NewApple creates the Apple Updates updater.
func NewApple(d Deps) *Apple {
	return &Apple{Deps: d}
}

// Name implements ports.Updater.
func (a *Apple) Name() string { return domain.TaskApple }

// RequiresCredential implements ports.Updater.
func (a *Apple) RequiresCredential() bool { return false }

// Applicable implements ports.Updater.
func (a *Apple) Applicable(host ports.Host) bool {
	return host.OS() == osDarwin
}

// Run implements ports.Updater.
func (a *Apple) Run(ctx context.Context, _ ports.UpdateRequest) error {
	seq := a.sequence()

	a.Logger.Info("Checking for macOS software updates")
	list, ok := seq.Run(ctx, domain.NewCommand("softwareupdate", "--list"))
	switch {
	case !ok:
	case strings.Contains(list.Stdout+list.Stderr, noNewSoftware):
		a.Logger.Info(noNewSoftware)
	default:
		a.Logger.Info("Installing recommended updates")
		seq.Run(ctx, domain.NewCommand("softwareupdate", "--install", "--recommended"))
	}

	if !a.Host.HasCommand("mas") {
		a.Logger.Info("mas not found, skipping App Store updates")
		return seq.Err(ctx)
	}

	outdated, ok := seq.Run(ctx, domain.NewCommand("mas", "outdated"))
	switch {
	case !ok:
	case strings.TrimSpace(outdated.Stdout) == "":
		a.Logger.Info("No App Store updates available")
	default:
		a.Logger.Info("Installing App Store updates")
		seq.Run(ctx, domain.NewCommand("mas", "upgrade"))
	}

	return seq.Err(ctx)
}
