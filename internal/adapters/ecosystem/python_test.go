package ecosystem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/upkeep/internal/adapters/ecosystem"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.uber.org/mock/gomock"
)

const pipOutdated = `Package    Version Latest Type
---------- ------- ------ -----
requests   2.31.0  2.32.3 wheel
setuptools 69.0.2  75.1.0 wheel
`

func TestParseOutdated(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"table", pipOutdated, []string{"requests", "setuptools"}},
		{"empty", "", nil},
		{"header only", "Package Version Latest Type\n------- ------- ------ ----\n", nil},
		{"no trailing newline", "rich 13.7.0 13.9.2 wheel", []string{"rich"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ecosystem.ParseOutdated(tt.in))
		})
	}
}

func TestPython_PipReviewSucceeds(t *testing.T) {
	f := newFixture(t).quiet()
	f.runner.EXPECT().Run(gomock.Any(), argv("python3 -m pip_review --auto --continue-on-fail")).Return(ok)

	require.NoError(t, ecosystem.NewPython(f.deps()).Run(context.Background(), ports.UpdateRequest{}))
}

func TestPython_FallsBackToPip(t *testing.T) {
	f := newFixture(t).quiet()

	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), argv("python3 -m pip_review --auto --continue-on-fail")).
			Return(failed("No module named pip_review")),
		f.runner.EXPECT().Run(gomock.Any(), argv("python3 -m pip list --outdated")).Return(withStdout(pipOutdated)),
		f.runner.EXPECT().Run(gomock.Any(), argv("python3 -m pip install --upgrade requests setuptools")).Return(ok),
	)

	require.NoError(t, ecosystem.NewPython(f.deps()).Run(context.Background(), ports.UpdateRequest{}))
}

func TestPython_NothingOutdated(t *testing.T) {
	f := newFixture(t).quiet()

	f.runner.EXPECT().Run(gomock.Any(), argv("python3 -m pip_review --auto --continue-on-fail")).Return(failed("x"))
	f.runner.EXPECT().Run(gomock.Any(), argv("python3 -m pip list --outdated")).Return(ok)

	require.NoError(t, ecosystem.NewPython(f.deps()).Run(context.Background(), ports.UpdateRequest{}))
}

func TestPython_ListFailureFailsTask(t *testing.T) {
	f := newFixture(t).quiet()

	f.runner.EXPECT().Run(gomock.Any(), argv("python3 -m pip_review --auto --continue-on-fail")).Return(failed("x"))
	f.runner.EXPECT().Run(gomock.Any(), argv("python3 -m pip list --outdated")).Return(failed("pip: broken"))

	err := ecosystem.NewPython(f.deps()).Run(context.Background(), ports.UpdateRequest{})
	require.ErrorIs(t, err, domain.ErrStepsFailed)
}

func TestPython_Applicable(t *testing.T) {
	f := newFixture(t)
	f.host.EXPECT().HasCommand("python3").Return(true)

	p := ecosystem.NewPython(f.deps())
	assert.True(t, p.Applicable(f.host))
	assert.False(t, p.RequiresCredential())
}
