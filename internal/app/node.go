package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.lancet.dev/lancet/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.lancet.dev/lancet/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.lancet.dev/lancet/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.lancet.dev/lancet/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.lancet.dev/lancet/internal/core/ports"
	"go.lancet.dev/lancet/internal/engine/graph"
	"go.lancet.dev/lancet/internal/engine/policy"
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
			fs.ScannerNodeID,
			graph.BuilderNodeID,
			policy.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[*graph.Builder](ctx)
			if err != nil {
				return nil, err
			}

			pol, err := graft.Dep[*policy.Policy](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, scanner, builder, pol, tel, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
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

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: tel,
			}, nil
		},
	})
}
