package host_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/internal/adapters/host"
)

func TestSystem_OS(t *testing.T) {
	assert.Equal(t, runtime.GOOS, host.New().OS())
}

func TestSystem_HasCommand(t *testing.T) {
	bin := t.TempDir()
	tool := filepath.Join(bin, "fakebrew")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec // must be executable
	t.Setenv("PATH", bin)

	h := host.New()
	assert.True(t, h.HasCommand("fakebrew"))
	assert.False(t, h.HasCommand("apt-get-missing"))
}

func TestSystem_DirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	h := host.New()
	assert.True(t, h.DirExists(dir))
	assert.False(t, h.DirExists(file))
	assert.False(t, h.DirExists(filepath.Join(dir, "missing")))
}
