package dumpbin

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlint/internal/core/ports"
)

// NodeID is the unique identifier for the tool inspector Graft node.
const NodeID graft.ID = "adapter.dumpbin"

func init() {
	graft.Register(graft.Node[ports.ToolInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolInspector, error) {
			return Discover(), nil
		},
	})
}
