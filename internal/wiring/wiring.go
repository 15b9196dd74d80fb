// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/packlint/internal/adapters/coff"
	_ "go.trai.ch/packlint/internal/adapters/config"
	_ "go.trai.ch/packlint/internal/adapters/dumpbin"
	_ "go.trai.ch/packlint/internal/adapters/fs"
	_ "go.trai.ch/packlint/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/packlint/internal/app"
	_ "go.trai.ch/packlint/internal/engine/lint"
)
