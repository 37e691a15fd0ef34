// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/promptx/internal/adapters/cas"
	_ "go.trai.ch/promptx/internal/adapters/config"
	_ "go.trai.ch/promptx/internal/adapters/fs"
	_ "go.trai.ch/promptx/internal/adapters/generator"
	_ "go.trai.ch/promptx/internal/adapters/linear"
	_ "go.trai.ch/promptx/internal/adapters/logger"
	_ "go.trai.ch/promptx/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/promptx/internal/app"
)
