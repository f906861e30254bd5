package graph

import (
	"context"

	"github.com/grindlemire/graft"
	"go.lancet.dev/lancet/internal/adapters/cache" //nolint:depguard // Wired in engine wiring
	"go.lancet.dev/lancet/internal/adapters/fs"    //nolint:depguard // Wired in engine wiring
	"go.lancet.dev/lancet/internal/adapters/logger"
	"go.lancet.dev/lancet/internal/core/ports"
)

const (
	// ExtractorNodeID is the unique identifier for the specifier extractor Graft node.
	ExtractorNodeID graft.ID = "engine.graph.extractor"
	// BuilderNodeID is the unique identifier for the graph builder Graft node.
	BuilderNodeID graft.ID = "engine.graph.builder"
)

func init() {
	graft.Register(graft.Node[ports.SpecifierExtractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SpecifierExtractor, error) {
			return NewRegexExtractor(), nil
		},
	})

	graft.Register(graft.Node[*Builder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.HasherNodeID,
			fs.ResolverNodeID,
			ExtractorNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			c, err := graft.Dep[ports.Cache](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.SpecifierExtractor](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ImportResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(c, hasher, extractor, resolver, log), nil
		},
	})
}
