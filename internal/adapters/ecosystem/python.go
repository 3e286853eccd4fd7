package ecosystem

import (
	"context"
	"regexp"
	"strings"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// outdatedLine matches rows of `pip list --outdated` that carry a version.
var outdatedLine = regexp.MustCompile(`\s\d+\.`)

// Python upgrades user-visible pip packages.
type Python struct {
	Deps
}

// NewPython creates the Python updater.
func NewPython(d Deps) *Python {
	return &Python{Deps: d}
}

// Name implements ports.Updater.
func (p *Python) Name() string { return domain.TaskPython }

// RequiresCredential implements ports.Updater.
func (p *Python) RequiresCredential() bool { return false }

// Applicable implements ports.Updater.
func (p *Python) Applicable(host ports.Host) bool {
	return host.HasCommand("python3")
}

// Run implements ports.Updater. pip-review is preferred; plain pip is the
// fallback when it is missing or fails.
func (p *Python) Run(ctx context.Context, _ ports.UpdateRequest) error {
	seq := p.sequence()

	p.Logger.Info("Updating python packages")
	if _, ok := seq.Try(ctx, domain.NewCommand("python3", "-m", "pip_review", "--auto", "--continue-on-fail")); ok || seq.Halted() {
		return seq.Err(ctx)
	}

	p.Logger.Info("pip-review failed, trying pip directly")
	list, ok := seq.Run(ctx, domain.NewCommand("python3", "-m", "pip", "list", "--outdated"))
	if !ok {
		return seq.Err(ctx)
	}

	pkgs := ParseOutdated(list.Stdout)
	if len(pkgs) == 0 {
		p.Logger.Info("python packages are up to date")
		return seq.Err(ctx)
	}

	args := append([]string{"-m", "pip", "install", "--upgrade"}, pkgs...)
	seq.Run(ctx, domain.NewCommand("python3", args...))
	return seq.Err(ctx)
}

// ParseOutdated extracts package names from `pip list --outdated` output.
func ParseOutdated(out string) []string {
	var pkgs []string
	for line := range strings.Lines(out) {
		if !outdatedLine.MatchString(line) {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			pkgs = append(pkgs, fields[0])
		}
	}
	return pkgs
}
