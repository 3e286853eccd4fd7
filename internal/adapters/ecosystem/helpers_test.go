package ecosystem_test

import (
	"errors"
	"testing"

	"go.trai.ch/upkeep/internal/adapters/ecosystem"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// argvMatcher matches a domain.Command by its rendered argument vector and,
// optionally, its working directory.
type argvMatcher struct {
	argv string
	dir  string
}

func (m argvMatcher) Matches(x any) bool {
	cmd, ok := x.(domain.Command)
	if !ok {
		return false
	}
	return cmd.String() == m.argv && (m.dir == "" || cmd.Dir == m.dir)
}

func (m argvMatcher) String() string {
	if m.dir != "" {
		return "runs " + m.argv + " in " + m.dir
	}
	return "runs " + m.argv
}

func argv(s string) gomock.Matcher { return argvMatcher{argv: s} }

func argvIn(s, dir string) gomock.Matcher { return argvMatcher{argv: s, dir: dir} }

var (
	ok         = domain.CommandResult{}
	notFound   = domain.CommandResult{ExitCode: domain.ExitCodeSpawnFailure, Err: errors.New("executable file not found in $PATH")}
	failed     = func(stderr string) domain.CommandResult { return domain.CommandResult{ExitCode: 1, Stderr: stderr} }
	withStdout = func(stdout string) domain.CommandResult { return domain.CommandResult{Stdout: stdout} }
)

type fixture struct {
	ctrl   *gomock.Controller
	runner *mocks.MockCommandRunner
	logger *mocks.MockLogger
	host   *mocks.MockHost
	cfg    *domain.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &fixture{
		ctrl:   ctrl,
		runner: mocks.NewMockCommandRunner(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		host:   mocks.NewMockHost(ctrl),
		cfg:    domain.DefaultConfig(t.TempDir()),
	}
}

// quiet accepts any log line not explicitly expected beforehand.
func (f *fixture) quiet() *fixture {
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) deps() ecosystem.Deps {
	return ecosystem.Deps{
		Runner: f.runner,
		Logger: f.logger,
		Config: f.cfg,
		Host:   f.host,
	}
}

func (f *fixture) onOS(goos string) *fixture {
	f.host.EXPECT().OS().Return(goos).AnyTimes()
	return f
}
