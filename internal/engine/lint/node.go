package lint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlint/internal/adapters/coff"
	"go.trai.ch/packlint/internal/adapters/dumpbin"
	"go.trai.ch/packlint/internal/adapters/fs"
	"go.trai.ch/packlint/internal/core/ports"
)

// NodeID is the unique identifier for the lint suite Graft node.
const NodeID graft.ID = "engine.lint"

func init() {
	graft.Register(graft.Node[*Suite]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, coff.NodeID, dumpbin.NodeID},
		Run: func(ctx context.Context) (*Suite, error) {
			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}
			headers, err := graft.Dep[ports.HeaderReader](ctx)
			if err != nil {
				return nil, err
			}
			tool, err := graft.Dep[ports.ToolInspector](ctx)
			if err != nil {
				return nil, err
			}
			return NewSuite(scanner, headers, tool), nil
		},
	})
}
