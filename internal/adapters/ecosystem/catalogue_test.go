package ecosystem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/upkeep/internal/adapters/ecosystem"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestCatalogue_BoardOrder(t *testing.T) {
	f := newFixture(t)

	names := ecosystem.TaskNames(ecosystem.Catalogue(f.deps()))
	assert.Equal(t, []string{
		domain.TaskHomebrew,
		domain.TaskPython,
		domain.TaskAPT,
		domain.TaskRuby,
		domain.TaskGit,
		domain.TaskApple,
	}, names)
}

func TestCatalogue_OnlyPythonOnPath(t *testing.T) {
	f := newFixture(t).onOS("linux")
	f.host.EXPECT().HasCommand(gomock.Any()).DoAndReturn(func(name string) bool {
		return name == "python3"
	}).AnyTimes()
	f.host.EXPECT().DirExists(gomock.Any()).Return(false).AnyTimes()

	var applicable []string
	for _, u := range ecosystem.Catalogue(f.deps()) {
		if u.Applicable(f.host) {
			applicable = append(applicable, u.Name())
		}
	}
	assert.Equal(t, []string{domain.TaskPython}, applicable)
}

func TestCatalogue_CredentialNeeds(t *testing.T) {
	f := newFixture(t)

	var privileged []string
	for _, u := range ecosystem.Catalogue(f.deps()) {
		if u.RequiresCredential() {
			privileged = append(privileged, u.Name())
		}
	}
	assert.Equal(t, []string{domain.TaskAPT, domain.TaskRuby}, privileged)
}
