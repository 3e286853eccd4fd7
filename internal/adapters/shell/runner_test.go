package shell_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/internal/adapters/shell"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// debugLines records every Debug message sent to a mock logger.
type debugLines struct {
	mu    sync.Mutex
	lines []string
}

func (d *debugLines) add(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = append(d.lines, msg)
}

func (d *debugLines) joined() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return strings.Join(d.lines, "\n")
}

func newRunner(t *testing.T) (*shell.Runner, *debugLines) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	lines := &debugLines{}
	log.EXPECT().Debug(gomock.Any()).Do(lines.add).AnyTimes()

	return shell.NewRunner(log), lines
}

func TestRunner_CapturesOutputAndExitCode(t *testing.T) {
	runner, lines := newRunner(t)

	res := runner.Run(context.Background(),
		domain.NewCommand("sh", "-c", "echo out; echo err 1>&2; exit 3"))

	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.False(t, res.Success())

	log := lines.joined()
	assert.Contains(t, log, "running: sh -c")
	assert.Contains(t, log, "[sh] out")
	assert.Contains(t, log, "[sh] err")
	assert.Contains(t, log, "exited with status 3")
}

func TestRunner_Success(t *testing.T) {
	runner, _ := newRunner(t)

	res := runner.Run(context.Background(), domain.NewCommand("true"))

	assert.True(t, res.Success())
	assert.Equal(t, 0, res.ExitCode)
}

func TestRunner_MissingBinary(t *testing.T) {
	runner, _ := newRunner(t)

	var res domain.CommandResult
	require.NotPanics(t, func() {
		res = runner.Run(context.Background(), domain.NewCommand("upkeep-definitely-not-installed"))
	})

	assert.Equal(t, domain.ExitCodeSpawnFailure, res.ExitCode)
	require.Error(t, res.Err)
	assert.True(t, res.SpawnFailed())
	assert.NotEmpty(t, res.Stderr)
	assert.Contains(t, res.Detail(), "upkeep-definitely-not-installed")
}

func TestRunner_SecretOnStdinOnly(t *testing.T) {
	runner, lines := newRunner(t)
	t.Setenv("UPKEEP_EXPECTED_PW", "hunter2")

	cmd := domain.NewCommand("sh", "-c", `read -r pw; [ "$pw" = "$UPKEEP_EXPECTED_PW" ] && echo matched; echo "args:$*"`, "sh")
	cmd.Secret = domain.NewSecret([]byte("hunter2"))

	res := runner.Run(context.Background(), cmd)

	require.True(t, res.Success(), res.Detail())
	assert.Contains(t, res.Stdout, "matched")
	assert.Contains(t, res.Stdout, "args:\n")
	assert.NotContains(t, lines.joined(), "hunter2")
	assert.False(t, cmd.Secret.Empty(), "runner must not consume the caller's secret")
}

func TestRunner_WorkingDir(t *testing.T) {
	runner, _ := newRunner(t)
	dir := t.TempDir()

	res := runner.Run(context.Background(), domain.NewCommand("pwd").InDir(dir))
	require.True(t, res.Success(), res.Detail())

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(res.Stdout))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunner_InheritsEnvironment(t *testing.T) {
	runner, _ := newRunner(t)
	t.Setenv("UPKEEP_TEST_VAR", "inherited")

	res := runner.Run(context.Background(), domain.NewCommand("sh", "-c", "echo $UPKEEP_TEST_VAR"))

	require.True(t, res.Success())
	assert.Equal(t, "inherited\n", res.Stdout)
}

func TestRunner_Cancellation(t *testing.T) {
	runner, _ := newRunner(t)
	runner.WithWaitDelay(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := runner.Run(ctx, domain.NewCommand("sleep", "30"))

	assert.Less(t, time.Since(start), 10*time.Second)
	assert.False(t, res.Success())
	require.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestRunner_CancelledBeforeStart(t *testing.T) {
	runner, _ := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := runner.Run(ctx, domain.NewCommand("true"))

	require.ErrorIs(t, res.Err, context.Canceled)
	assert.NotEqual(t, domain.ExitCodeSpawnFailure, res.ExitCode)
}

func TestRunner_CarriageReturnProgress(t *testing.T) {
	runner, lines := newRunner(t)

	res := runner.Run(context.Background(),
		domain.NewCommand("sh", "-c", `printf '10%%\r50%%\r100%%\n'`))
	require.True(t, res.Success())

	log := lines.joined()
	assert.Contains(t, log, "[sh] 100%")
	assert.NotContains(t, log, "[sh] 10%\r")
}
