package ports

import (
	"context"

	"go.trai.ch/upkeep/internal/core/domain"
)

// Credential supplies the sudo password for the duration of one run.
//
//go:generate mockgen -source=credential.go -destination=mocks/mock_credential.go -package=mocks
type Credential interface {
	// Get returns the validated secret, prompting the user on first use only.
	Get(ctx context.Context) (*domain.Secret, error)

	// Close stops any background refresh and wipes the secret.
	Close() error
}
