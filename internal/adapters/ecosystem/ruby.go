package ecosystem

import (
	"context"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// gemBinDir is where macOS expects gem executables when the system Ruby is
// updated through sudo.
const gemBinDir = "/usr/local/bin/"

var gemSteps = [][]string{
	{"gem", "update", "-n", gemBinDir},
	{"gem", "update", "-n", gemBinDir, "--system"},
	{"gem", "update"},
	{"gem", "update", "--system"},
}

// Ruby updates system gems on macOS.
type Ruby struct {
	Deps
}

// NewRuby creates the Ruby updater.
func NewRuby(d Deps) *Ruby {
	return &Ruby{Deps: d}
}

// Name implements ports.Updater.
func (r *Ruby) Name() string { return domain.TaskRuby }

// RequiresCredential implements ports.Updater.
func (r *Ruby) RequiresCredential() bool { return true }

// Applicable implements ports.Updater.
func (r *Ruby) Applicable(host ports.Host) bool {
	return host.OS() == osDarwin && host.HasCommand("gem")
}

// Run implements ports.Updater.
func (r *Ruby) Run(ctx context.Context, req ports.UpdateRequest) error {
	if req.Secret == nil || req.Secret.Empty() {
		return domain.ErrCredentialRequired
	}

	r.Logger.Info("Updating ruby gems")
	seq := r.sequence()
	for _, argv := range gemSteps {
		seq.Run(ctx, sudoCommand(req.Secret, argv...))
	}
	return seq.Err(ctx)
}
