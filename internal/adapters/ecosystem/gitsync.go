package ecosystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/zerr"
)

// SyncReport summarises one bulk sync of the git root.
type SyncReport struct {
	Synced []string
	// Detached lists repositories on a detached HEAD. They were fetched and
	// garbage collected but not pulled.
	Detached []string
	NotRepos []string
	Failed   []string
}

// GitSync pulls every repository directly under a root directory.
type GitSync struct {
	Deps
	root string
}

// NewGitSync creates the Git updater for root.
func NewGitSync(d Deps, root string) *GitSync {
	return &GitSync{Deps: d, root: root}
}

// Name implements ports.Updater.
func (g *GitSync) Name() string { return domain.TaskGit }

// RequiresCredential implements ports.Updater.
func (g *GitSync) RequiresCredential() bool { return false }

// Applicable implements ports.Updater.
func (g *GitSync) Applicable(host ports.Host) bool {
	return g.root != "" && host.DirExists(g.root)
}

// Run implements ports.Updater.
func (g *GitSync) Run(ctx context.Context, _ ports.UpdateRequest) error {
	_, err := g.Sync(ctx)
	return err
}

// Sync visits the children of the root in lexical order. A failing
// repository never stops the sync of the next one.
func (g *GitSync) Sync(ctx context.Context) (SyncReport, error) {
	var report SyncReport

	entries, err := os.ReadDir(g.root)
	if err != nil {
		return report, zerr.With(zerr.Wrap(err, domain.ErrGitRootReadFailed.Error()), "path", g.root)
	}

	g.Logger.Info("Updating git repos in " + g.root)
	for _, entry := range entries {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		name := entry.Name()
		path := filepath.Join(g.root, name)
		if !isRepo(path) {
			g.Logger.Info(name + ": not a git repository")
			report.NotRepos = append(report.NotRepos, name)
			continue
		}

		synced, detached := g.syncRepo(ctx, path, name)
		switch {
		case !synced:
			report.Failed = append(report.Failed, name)
		case detached:
			report.Detached = append(report.Detached, name)
		default:
			report.Synced = append(report.Synced, name)
		}
	}

	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	if len(report.Synced)+len(report.Detached)+len(report.Failed) == 0 {
		g.Logger.Info("No git repositories found in " + g.root)
	}
	if len(report.Detached) > 0 {
		g.Logger.Warn("Not pulled (detached HEAD): " + strings.Join(report.Detached, ", "))
	}
	if len(report.Failed) > 0 {
		err := zerr.With(zerr.New("repositories failed to sync"), "repos", strings.Join(report.Failed, ", "))
		return report, errors.Join(domain.ErrStepsFailed, err)
	}
	return report, nil
}

// syncRepo runs remote update, pull and gc in path. A detached HEAD has no
// branch to rebase onto, so the pull is left out for it.
func (g *GitSync) syncRepo(ctx context.Context, path, name string) (synced, detached bool) {
	seq := g.sequence()

	branch, err := currentBranch(path)
	switch {
	case err != nil:
		g.Logger.Warn(name + ": cannot read HEAD, pulling anyway: " + err.Error())
	case branch == "":
		g.Logger.Info("Updating " + name)
	default:
		g.Logger.Info("Updating " + name + " (" + branch + ")")
	}

	detached = err == nil && branch == ""

	seq.Run(ctx, domain.NewCommand("git", "remote", "update").InDir(path))
	if detached {
		g.Logger.Warn(name + ": detached HEAD, skipping pull")
	} else {
		seq.Run(ctx, domain.NewCommand("git", "pull", "--rebase").InDir(path))
	}
	seq.Run(ctx, domain.NewCommand("git", "gc", "--auto").InDir(path))

	return seq.Err(ctx) == nil, detached
}

// currentBranch returns the checked-out branch, or "" for a detached HEAD.
func currentBranch(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// isRepo reports whether path is a directory holding a .git entry.
func isRepo(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(path, ".git"))
	return err == nil
}
