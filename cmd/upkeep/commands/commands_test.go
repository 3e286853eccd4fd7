package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/cmd/upkeep/commands"
	"go.trai.ch/upkeep/internal/build"
	"go.trai.ch/upkeep/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts domain.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts domain.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	cli.SetArgs(args)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Root(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.RunOptions
	}{
		{"defaults are interactive", nil, domain.RunOptions{Interactive: true, OutputMode: "auto"}},
		{"short no-input", []string{"-y"}, domain.RunOptions{OutputMode: "auto"}},
		{"long flags", []string{"--no-input", "--debug", "--output-mode", "linear"}, domain.RunOptions{Debug: true, OutputMode: "linear"}},
		{"short output mode", []string{"-o", "table"}, domain.RunOptions{Interactive: true, OutputMode: "table"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.RunOptions
			called := false
			_, err := execute(t, &mockApp{runFunc: func(_ context.Context, opts domain.RunOptions) error {
				got = opts
				called = true
				return nil
			}}, tt.args...)

			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommands_RootErrors(t *testing.T) {
	t.Run("propagates run failure", func(t *testing.T) {
		_, err := execute(t, &mockApp{runFunc: func(context.Context, domain.RunOptions) error {
			return domain.ErrUpdatesFailed
		}})
		require.ErrorIs(t, err, domain.ErrUpdatesFailed)
	})

	t.Run("rejects unknown output mode", func(t *testing.T) {
		_, err := execute(t, &mockApp{runFunc: func(context.Context, domain.RunOptions) error {
			return errors.New("should not be called")
		}}, "-o", "fancy")
		require.ErrorIs(t, err, domain.ErrInvalidOutputMode)
		assert.Contains(t, err.Error(), "fancy")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "brew")
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	want := "upkeep version " + build.Version + " (commit: " + build.Commit + ", date: " + build.Date + ")\n"

	t.Run("subcommand", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "version")
		require.NoError(t, err)
		assert.Equal(t, want, out)
	})

	t.Run("flag", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "--version")
		require.NoError(t, err)
		assert.Equal(t, want, out)
	})
}

func TestCommands_Help(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--no-input")
	assert.Contains(t, out, "--output-mode")
	assert.Contains(t, out, "--debug")
}
