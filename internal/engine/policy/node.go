package policy

import (
	"context"

	"github.com/grindlemire/graft"
	"go.lancet.dev/lancet/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.lancet.dev/lancet/internal/core/ports"
)

// NodeID is the unique identifier for the policy Graft node.
const NodeID graft.ID = "engine.policy"

func init() {
	graft.Register(graft.Node[*Policy]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Policy, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPolicy(log), nil
		},
	})
}
