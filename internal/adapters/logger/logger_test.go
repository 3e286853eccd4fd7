package logger_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "multiline info",
			log:        func(l *logger.Logger) { l.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("some warning") },
			goldenName: "warn_basic",
		},
		{
			name:       "stdlib error",
			log:        func(l *logger.Logger) { l.Error(os.ErrPermission) },
			goldenName: "error_simple",
		},
		{
			name: "multiline error",
			log: func(l *logger.Logger) {
				l.Error(errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"))
			},
			goldenName: "error_multiline",
		},
		{
			name: "debug when enabled",
			log: func(l *logger.Logger) {
				l.SetDebug(true)
				l.Debug("probing brew")
			},
			goldenName: "debug_enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_DebugHiddenByDefault(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("noise")
	assert.Empty(t, buf.String())

	lg.SetDebug(true)
	lg.SetDebug(false)
	lg.Debug("still noise")
	assert.Empty(t, buf.String())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(errors.New("underlying cause"), "wrapped message")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: wrapped message")
	assert.Contains(t, out, "underlying cause")
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_AttachFile(t *testing.T) {
	lg, buf := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "state", "upkeep.log")

	require.NoError(t, lg.AttachFile(path))
	lg.Info("Homebrew: in_progress")
	lg.Debug("hidden from both sinks")
	require.NoError(t, lg.Close())

	// Closing twice is harmless.
	require.NoError(t, lg.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "level=INFO")
	assert.Contains(t, string(data), "Homebrew: in_progress")
	assert.Contains(t, string(data), "time=")
	assert.NotContains(t, string(data), "hidden from both sinks")
	assert.Contains(t, buf.String(), "Homebrew: in_progress")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLogger_AttachFile_Unwritable(t *testing.T) {
	lg, _ := newTestLogger(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := lg.AttachFile(filepath.Join(blocker, "upkeep.log"))
	require.Error(t, err)
}
