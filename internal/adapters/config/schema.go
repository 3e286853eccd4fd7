package config

import "time"

// File represents the structure of config.yaml. Pointer fields distinguish
// an absent key from an explicit zero value.
type File struct {
	GitRoot            *string        `yaml:"git_root"`
	StepFailure        *string        `yaml:"step_failure"`
	Cleanup            *string        `yaml:"cleanup"`
	MaintenanceChance  *int           `yaml:"maintenance_chance"`
	LockTimeout        *time.Duration `yaml:"lock_timeout"`
	RefreshInterval    *time.Duration `yaml:"refresh_interval"`
	CredentialAttempts *int           `yaml:"credential_attempts"`
	Disabled           []string       `yaml:"disabled"`
}
