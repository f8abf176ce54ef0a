package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrotag/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/wrotag/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/wrotag/internal/core/ports"
)

const (
	// HolderNodeID is the unique identifier for the cache Holder Graft node.
	HolderNodeID graft.ID = "app.holder"
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger *logger.Logger
}

func init() {
	graft.Register(graft.Node[*Holder]{
		ID:        HolderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Holder, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHolder(log), nil
		},
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			HolderNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.SourceLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			holder, err := graft.Dep[*Holder](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, log, holder), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
