package ports

import "go.trai.ch/upkeep/internal/core/domain"

// ConfigLoader defines the interface for loading the user configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file, falling back to defaults when it is absent.
	Load() (*domain.Config, error)
}
