// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.lancet.dev/lancet/internal/adapters/cache"
	_ "go.lancet.dev/lancet/internal/adapters/config"
	_ "go.lancet.dev/lancet/internal/adapters/fs"
	_ "go.lancet.dev/lancet/internal/adapters/logger"
	_ "go.lancet.dev/lancet/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.lancet.dev/lancet/internal/app"
	_ "go.lancet.dev/lancet/internal/engine/graph"
	_ "go.lancet.dev/lancet/internal/engine/policy"
)
