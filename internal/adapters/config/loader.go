// Package config provides the configuration loader for upkeep.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	Path   string
	Home   string
}

// NewLoader creates a new Loader reading path. home is used to expand a
// leading "~/" in path-valued keys.
func NewLoader(logger ports.Logger, path, home string) *Loader {
	return &Loader{Logger: logger, Path: path, Home: home}
}

// Load reads the configuration file. A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.DefaultConfig(filepath.Join(l.Home, domain.DefaultGitRootName))

	var file File
	found, err := readAndUnmarshalYAML(l.Path, &file)
	if err != nil {
		return nil, zerr.With(err, "path", l.Path)
	}
	if !found {
		l.Logger.Debug("no config file at " + l.Path + ", using defaults")
		return cfg, nil
	}

	if err := l.apply(cfg, &file); err != nil {
		return nil, zerr.With(err, "path", l.Path)
	}
	return cfg, nil
}

func (l *Loader) apply(cfg *domain.Config, file *File) error {
	if file.GitRoot != nil {
		if *file.GitRoot == "" {
			return invalid("git_root", "")
		}
		cfg.GitRoot = expandHome(*file.GitRoot, l.Home)
	}

	if file.StepFailure != nil {
		policy := domain.StepFailurePolicy(*file.StepFailure)
		switch policy {
		case domain.StepFailureContinue, domain.StepFailureAbort:
			cfg.StepFailure = policy
		default:
			return invalid("step_failure", *file.StepFailure)
		}
	}

	if file.Cleanup != nil {
		mode := domain.CleanupMode(*file.Cleanup)
		switch mode {
		case domain.CleanupAsk, domain.CleanupAlways, domain.CleanupNever:
			cfg.Cleanup = mode
		default:
			return invalid("cleanup", *file.Cleanup)
		}
	}

	if file.MaintenanceChance != nil {
		// 0 switches the maintenance check off.
		if *file.MaintenanceChance < 0 {
			return invalid("maintenance_chance", *file.MaintenanceChance)
		}
		cfg.MaintenanceChance = *file.MaintenanceChance
	}

	if err := positiveDuration("lock_timeout", file.LockTimeout, &cfg.LockTimeout); err != nil {
		return err
	}
	if err := positiveDuration("refresh_interval", file.RefreshInterval, &cfg.RefreshInterval); err != nil {
		return err
	}

	if file.CredentialAttempts != nil {
		if *file.CredentialAttempts < 1 {
			return invalid("credential_attempts", *file.CredentialAttempts)
		}
		cfg.CredentialAttempts = *file.CredentialAttempts
	}

	for _, name := range file.Disabled {
		if !isKnownTask(name) {
			l.Logger.Warn("config: disabled entry " + name + " does not name a task")
		}
	}
	cfg.Disabled = file.Disabled

	return nil
}

func positiveDuration(key string, value *time.Duration, target *time.Duration) error {
	if value == nil {
		return nil
	}
	if *value <= 0 {
		return invalid(key, value.String())
	}
	*target = *value
	return nil
}

func invalid(key string, value any) error {
	err := zerr.Wrap(domain.ErrInvalidConfig, "config key "+key)
	return zerr.With(err, "value", value)
}

func isKnownTask(name string) bool {
	switch name {
	case domain.TaskHomebrew, domain.TaskPython, domain.TaskAPT,
		domain.TaskRuby, domain.TaskGit, domain.TaskApple:
		return true
	}
	return false
}

// expandHome replaces a leading "~/" with home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}

// readAndUnmarshalYAML reports false without error when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath comes from the XDG config directory
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return false, zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return true, nil
}
