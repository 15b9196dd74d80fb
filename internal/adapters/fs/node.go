package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlint/internal/core/ports"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Scanner, error) {
			return NewScanner(), nil
		},
	})
}
