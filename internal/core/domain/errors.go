package domain

import "go.trai.ch/zerr"

var (
	// ErrAlreadyRunning is returned when another instance holds the run lock.
	ErrAlreadyRunning = zerr.New("another instance of upkeep is already running")

	// ErrLockFailed is returned when the lock file cannot be created or locked.
	ErrLockFailed = zerr.New("failed to acquire run lock")

	// ErrInterrupted is returned when a termination signal cut the run short.
	ErrInterrupted = zerr.New("run interrupted")

	// ErrUpdatesFailed is returned when at least one ecosystem task failed.
	ErrUpdatesFailed = zerr.New("one or more updates failed")

	// ErrStepsFailed is returned by an updater when one of its sub-steps failed.
	ErrStepsFailed = zerr.New("update steps failed")

	// ErrStepFailed describes a single failed command inside an update.
	ErrStepFailed = zerr.New("command failed")

	// ErrCredentialRequired is returned when a privileged updater runs without a secret.
	ErrCredentialRequired = zerr.New("sudo password required")

	// ErrCredentialRejected is returned after too many invalid password attempts.
	ErrCredentialRejected = zerr.New("sudo password rejected too many times")

	// ErrPrivilegeUnavailable is returned when sudo itself cannot be invoked.
	ErrPrivilegeUnavailable = zerr.New("privilege escalation unavailable")

	// ErrPromptFailed is returned when reading from the terminal fails.
	ErrPromptFailed = zerr.New("failed to read user input")

	// ErrUnknownTask is returned when the status board has no task by that name.
	ErrUnknownTask = zerr.New("unknown task")

	// ErrInvalidTransition is returned for a state change the task lifecycle forbids.
	ErrInvalidTransition = zerr.New("invalid task state transition")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration value")

	// ErrLogFileOpenFailed is returned when the log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")

	// ErrInvalidOutputMode is returned for an unknown --output-mode value.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrGitRootReadFailed is returned when the git root cannot be listed.
	ErrGitRootReadFailed = zerr.New("failed to read git root")
)
