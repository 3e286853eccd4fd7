package ecosystem

import (
	"context"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

var aptSteps = []string{"update", "upgrade", "dist-upgrade", "autoremove", "autoclean"}

// APT updates Debian and Ubuntu system packages.
type APT struct {
	Deps
}

// NewAPT creates the APT updater.
func NewAPT(d Deps) *APT {
	return &APT{Deps: d}
}

// Name implements ports.Updater.
func (a *APT) Name() string { return domain.TaskAPT }

// RequiresCredential implements ports.Updater.
func (a *APT) RequiresCredential() bool { return true }

// Applicable implements ports.Updater.
func (a *APT) Applicable(host ports.Host) bool {
	return host.OS() == osLinux && host.HasCommand("apt-get")
}

// Run implements ports.Updater.
func (a *APT) Run(ctx context.Context, req ports.UpdateRequest) error {
	if req.Secret == nil || req.Secret.Empty() {
		return domain.ErrCredentialRequired
	}

	seq := a.sequence()
	for _, step := range aptSteps {
		a.Logger.Info("Running apt-get " + step)
		seq.Run(ctx, sudoCommand(req.Secret, "apt-get", "-y", step))
	}
	return seq.Err(ctx)
}
