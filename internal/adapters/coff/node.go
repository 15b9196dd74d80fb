package coff

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlint/internal/core/ports"
)

// NodeID is the unique identifier for the header reader Graft node.
const NodeID graft.ID = "adapter.coff"

func init() {
	graft.Register(graft.Node[ports.HeaderReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HeaderReader, error) {
			return NewReader(), nil
		},
	})
}
