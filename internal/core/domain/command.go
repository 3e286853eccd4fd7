package domain

import "strings"

// ExitCodeSpawnFailure is the synthetic exit code reported when a command
// could not be started at all (missing binary, permission denied).
const ExitCodeSpawnFailure = 127

// Command describes one external process invocation.
type Command struct {
	// Name is the executable, resolved through PATH.
	Name string
	// Args are the arguments passed after Name.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Secret, when set, is written to the process's standard input.
	Secret *Secret
}

// NewCommand builds a Command from an argument vector.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// InDir returns a copy of c that runs in dir.
func (c Command) InDir(dir string) Command {
	c.Dir = dir
	return c
}

// Argv returns the full argument vector including the executable name.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the argument vector for logs. The secret is never included.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// CommandResult is the outcome of one command invocation.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// Err is set when the process could not be spawned or waited on.
	Err error
}

// Success reports whether the command exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// SpawnFailed reports whether the command never ran.
func (r CommandResult) SpawnFailed() bool {
	return r.ExitCode == ExitCodeSpawnFailure && r.Err != nil
}

// Detail returns the most useful failure description: trimmed stderr, or the
// spawn error when stderr is empty.
func (r CommandResult) Detail() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return strings.TrimSpace(r.Stdout)
}
