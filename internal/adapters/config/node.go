package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlint/internal/adapters/logger"
	"go.trai.ch/packlint/internal/core/ports"
)

// NodeID is the unique identifier for the recipe loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.RecipeLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RecipeLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
