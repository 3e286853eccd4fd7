package ecosystem

import (
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// Catalogue returns every known updater in board order. Whether each one
// applies to the current machine is decided later by the orchestrator.
func Catalogue(d Deps) []ports.Updater {
	return []ports.Updater{
		NewHomebrew(d),
		NewPython(d),
		NewAPT(d),
		NewRuby(d),
		NewGitSync(d, d.Config.GitRoot),
		NewApple(d),
	}
}

// TaskNames returns the names of the catalogue in board order.
func TaskNames(updaters []ports.Updater) []string {
	names := make([]string, len(updaters))
	for i, u := range updaters {
		names[i] = u.Name()
	}
	return names
}

// Deps carries the collaborators shared by every updater.
type Deps struct {
	Runner ports.CommandRunner
	Logger ports.Logger
	Config *domain.Config
	Host   ports.Host
}

func (d Deps) sequence() *sequence {
	return newSequence(d.Runner, d.Logger, d.Config.StepFailure)
}

// sudoCommand runs argv through sudo, feeding the password on stdin and
// suppressing sudo's own prompt.
func sudoCommand(secret *domain.Secret, argv ...string) domain.Command {
	cmd := domain.NewCommand("sudo", append([]string{"-S", "-p", ""}, argv...)...)
	cmd.Secret = secret
	return cmd
}

const (
	osLinux  = "linux"
	osDarwin = "darwin"
)
