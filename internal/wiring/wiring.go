// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/pymk-dev/pymk/internal/adapters/config"
	_ "github.com/pymk-dev/pymk/internal/adapters/fs"
	_ "github.com/pymk-dev/pymk/internal/adapters/logger"
	_ "github.com/pymk-dev/pymk/internal/adapters/shell"
	_ "github.com/pymk-dev/pymk/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/pymk-dev/pymk/internal/app"
	_ "github.com/pymk-dev/pymk/internal/engine/runner"
)
