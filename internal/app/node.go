package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlint/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/packlint/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/packlint/internal/core/ports"
	"go.trai.ch/packlint/internal/engine/lint"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lint.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.RecipeLoader](ctx)
			if err != nil {
				return nil, err
			}

			suite, err := graft.Dep[*lint.Suite](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, suite, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
