// Package shell runs external commands and captures their outcome.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultWaitDelay bounds how long Run waits for a cancelled command's
// output pipes before abandoning them.
const DefaultWaitDelay = 3 * time.Second

// Runner implements ports.CommandRunner using os/exec.
//
// Output is captured into the result and mirrored line by line to the
// logger at debug level, prefixed with the command name.
type Runner struct {
	logger    ports.Logger
	waitDelay time.Duration
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger:    logger,
		waitDelay: DefaultWaitDelay,
	}
}

// WithWaitDelay overrides DefaultWaitDelay.
func (r *Runner) WithWaitDelay(d time.Duration) *Runner {
	r.waitDelay = d
	return r
}

// Run executes c and waits for it to complete. It never returns an error
// separately: every failure mode is described by the result.
func (r *Runner) Run(ctx context.Context, c domain.Command) domain.CommandResult {
	r.logger.Debug("running: " + c.String())

	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // commands come from the updater catalogue
	cmd.Dir = c.Dir
	cmd.WaitDelay = r.waitDelay

	if c.Secret != nil {
		line := c.Secret.Line()
		defer domain.Wipe(line)
		cmd.Stdin = bytes.NewReader(line)
	}

	var stdout, stderr bytes.Buffer
	stdoutLog := &logWriter{logger: r.logger, prefix: "[" + c.Name + "] "}
	stderrLog := &logWriter{logger: r.logger, prefix: "[" + c.Name + "] "}
	cmd.Stdout = io.MultiWriter(&stdout, stdoutLog)
	cmd.Stderr = io.MultiWriter(&stderr, stderrLog)

	err := cmd.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	result := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil, errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState.Success():
	case ctx.Err() != nil:
		result.ExitCode = -1
		if cmd.ProcessState != nil {
			result.ExitCode = cmd.ProcessState.ExitCode()
		}
		result.Err = ctx.Err()
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case cmd.ProcessState != nil:
		result.ExitCode = cmd.ProcessState.ExitCode()
		result.Err = err
	default:
		result.ExitCode = domain.ExitCodeSpawnFailure
		result.Err = zerr.With(zerr.Wrap(err, "failed to start command"), "command", c.Name)
		if result.Stderr == "" {
			result.Stderr = err.Error()
		}
	}

	r.logger.Debug(c.String() + " exited with " + exitCodeString(result.ExitCode))
	return result
}

func exitCodeString(code int) string {
	if code < 0 {
		return "signal"
	}
	return "status " + strconv.Itoa(code)
}

// logWriter splits a byte stream into lines and logs each at debug level.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// Progress bars rewrite the line with \r; keep only the final frame.
	msg := string(line)
	if i := strings.LastIndexByte(strings.TrimRight(msg, "\r"), '\r'); i >= 0 {
		msg = msg[i+1:]
	}
	msg = strings.TrimSuffix(msg, "\r")
	if msg == "" {
		return
	}
	w.logger.Debug(w.prefix + msg)
}
