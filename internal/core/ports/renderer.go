package ports

import "go.trai.ch/upkeep/internal/core/domain"

// StatusRenderer draws the status board.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type StatusRenderer interface {
	// Render draws the given snapshot. Tasks arrive in board order.
	// It is called synchronously on every state change.
	Render(tasks []domain.TaskStatus) error
}
