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

func aptRequest() ports.UpdateRequest {
	return ports.UpdateRequest{Secret: domain.NewSecret([]byte("pw"))}
}

func TestAPT_Applicable(t *testing.T) {
	tests := []struct {
		goos   string
		hasApt bool
		want   bool
	}{
		{"linux", true, true},
		{"linux", false, false},
		{"darwin", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			f := newFixture(t).onOS(tt.goos)
			f.host.EXPECT().HasCommand("apt-get").Return(tt.hasApt).AnyTimes()

			apt := ecosystem.NewAPT(f.deps())
			assert.Equal(t, tt.want, apt.Applicable(f.host))
			assert.True(t, apt.RequiresCredential())
			assert.Equal(t, domain.TaskAPT, apt.Name())
		})
	}
}

func TestAPT_RunsAllStepsThroughSudo(t *testing.T) {
	f := newFixture(t).quiet()
	req := aptRequest()

	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y update")).Return(ok),
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y upgrade")).Return(ok),
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y dist-upgrade")).Return(ok),
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y autoremove")).Return(ok),
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y autoclean")).
			DoAndReturn(func(_ context.Context, cmd domain.Command) domain.CommandResult {
				assert.Same(t, req.Secret, cmd.Secret, "the password is fed on stdin")
				return ok
			}),
	)

	require.NoError(t, ecosystem.NewAPT(f.deps()).Run(context.Background(), req))
}

func TestAPT_ContinuePolicyRunsRemainingSteps(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Warn("Error running sudo -S -p  apt-get -y update: E: Could not get lock")
	f.quiet()

	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y update")).Return(failed("E: Could not get lock\n")),
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y upgrade")).Return(ok),
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y dist-upgrade")).Return(ok),
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y autoremove")).Return(ok),
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y autoclean")).Return(ok),
	)

	err := ecosystem.NewAPT(f.deps()).Run(context.Background(), aptRequest())
	require.ErrorIs(t, err, domain.ErrStepsFailed)
	assert.Contains(t, err.Error(), "apt-get -y update")
}

func TestAPT_AbortPolicyStopsAtFirstFailure(t *testing.T) {
	f := newFixture(t).quiet()
	f.cfg.StepFailure = domain.StepFailureAbort

	f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y update")).Return(failed("boom"))

	err := ecosystem.NewAPT(f.deps()).Run(context.Background(), aptRequest())
	require.ErrorIs(t, err, domain.ErrStepsFailed)
}

func TestAPT_SpawnFailureAlwaysHalts(t *testing.T) {
	f := newFixture(t).quiet()

	f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y update")).Return(notFound)

	err := ecosystem.NewAPT(f.deps()).Run(context.Background(), aptRequest())
	require.ErrorIs(t, err, domain.ErrStepsFailed)
}

func TestAPT_RequiresSecret(t *testing.T) {
	f := newFixture(t)

	err := ecosystem.NewAPT(f.deps()).Run(context.Background(), ports.UpdateRequest{})
	require.ErrorIs(t, err, domain.ErrCredentialRequired)

	wiped := domain.NewSecret([]byte("pw"))
	wiped.Clear()
	err = ecosystem.NewAPT(f.deps()).Run(context.Background(), ports.UpdateRequest{Secret: wiped})
	require.ErrorIs(t, err, domain.ErrCredentialRequired, "a cleared secret is never piped to sudo")
}

func TestAPT_Cancellation(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		f := newFixture(t).quiet()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ecosystem.NewAPT(f.deps()).Run(ctx, aptRequest())
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("mid step", func(t *testing.T) {
		f := newFixture(t).quiet()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y update")).Return(ok)
		f.runner.EXPECT().Run(gomock.Any(), argv("sudo -S -p  apt-get -y upgrade")).
			DoAndReturn(func(ctx context.Context, _ domain.Command) domain.CommandResult {
				cancel()
				return domain.CommandResult{ExitCode: -1, Err: ctx.Err()}
			})

		err := ecosystem.NewAPT(f.deps()).Run(ctx, aptRequest())
		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domain.ErrStepsFailed)
	})
}
