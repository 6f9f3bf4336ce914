package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pymk-dev/pymk/internal/core/ports"
)

// NodeID is the unique identifier for the prober Graft node.
const NodeID graft.ID = "adapter.prober"

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prober, error) {
			return NewProber(), nil
		},
	})
}
