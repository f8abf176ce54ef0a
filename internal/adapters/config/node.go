package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrotag/internal/adapters/fs"
	"go.trai.ch/wrotag/internal/adapters/logger"
	"go.trai.ch/wrotag/internal/core/ports"
)

// NodeID identifies the settings loader Graft node.
const NodeID graft.ID = "adapter.config.source_loader"

func init() {
	graft.Register(graft.Node[ports.SourceLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceLoader, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSettingsLoader(walker, log), nil
		},
	})
}
