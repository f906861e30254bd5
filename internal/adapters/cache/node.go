package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.lancet.dev/lancet/internal/core/ports"
)

const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.Cache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Cache, error) {
			return New(), nil
		},
	})
}
