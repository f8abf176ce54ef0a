// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wrotag/internal/adapters/config"
	_ "go.trai.ch/wrotag/internal/adapters/fs"
	_ "go.trai.ch/wrotag/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/wrotag/internal/app"
)
