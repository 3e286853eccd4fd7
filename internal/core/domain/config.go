package domain

import (
	"slices"
	"time"
)

// StepFailurePolicy decides what happens to the remaining steps of an
// ecosystem update after one step fails.
type StepFailurePolicy string

const (
	// StepFailureContinue runs the remaining steps and fails the task at the end.
	StepFailureContinue StepFailurePolicy = "continue"
	// StepFailureAbort stops the ecosystem at the first failed step.
	StepFailureAbort StepFailurePolicy = "abort"
)

// CleanupMode controls post-update cache cleanup.
type CleanupMode string

const (
	// CleanupAsk prompts in interactive runs and cleans up otherwise.
	CleanupAsk CleanupMode = "ask"
	// CleanupAlways always cleans up.
	CleanupAlways CleanupMode = "always"
	// CleanupNever never cleans up.
	CleanupNever CleanupMode = "never"
)

const (
	// DefaultMaintenanceChance runs the maintenance check on one run in four.
	DefaultMaintenanceChance = 4
	// DefaultLockTimeout bounds how long a second instance waits for the run lock.
	DefaultLockTimeout = time.Second
	// DefaultRefreshInterval is how often the sudo session is re-asserted.
	DefaultRefreshInterval = 60 * time.Second
	// DefaultCredentialAttempts caps password re-prompts.
	DefaultCredentialAttempts = 3
	// DefaultGitRootName is the directory under $HOME scanned for repositories.
	DefaultGitRootName = "Github"
)

// Config is the resolved user configuration.
type Config struct {
	GitRoot            string
	StepFailure        StepFailurePolicy
	Cleanup            CleanupMode
	MaintenanceChance  int
	LockTimeout        time.Duration
	RefreshInterval    time.Duration
	CredentialAttempts int
	Disabled           []string
}

// DefaultConfig returns the configuration used when no file exists.
// gitRoot is usually $HOME/Github.
func DefaultConfig(gitRoot string) *Config {
	return &Config{
		GitRoot:            gitRoot,
		StepFailure:        StepFailureContinue,
		Cleanup:            CleanupAsk,
		MaintenanceChance:  DefaultMaintenanceChance,
		LockTimeout:        DefaultLockTimeout,
		RefreshInterval:    DefaultRefreshInterval,
		CredentialAttempts: DefaultCredentialAttempts,
	}
}

// IsDisabled reports whether the named task was switched off by the user.
func (c *Config) IsDisabled(name string) bool {
	return slices.Contains(c.Disabled, name)
}

// RunOptions are the per-invocation settings taken from the command line.
type RunOptions struct {
	// Interactive asks before each ecosystem. False for -y/--no-input.
	Interactive bool
	// Debug lowers the log level to debug.
	Debug bool
	// OutputMode is "auto", "table" or "linear".
	OutputMode string
}
