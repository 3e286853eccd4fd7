// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/upkeep/internal/adapters/config"
	_ "go.trai.ch/upkeep/internal/adapters/host"
	_ "go.trai.ch/upkeep/internal/adapters/lock"
	_ "go.trai.ch/upkeep/internal/adapters/logger"
	_ "go.trai.ch/upkeep/internal/adapters/shell"
	_ "go.trai.ch/upkeep/internal/adapters/terminal"
	// Register app and engine nodes.
	_ "go.trai.ch/upkeep/internal/app"
	_ "go.trai.ch/upkeep/internal/engine/orchestrator"
)
