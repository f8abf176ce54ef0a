package ports

import (
	"context"

	"go.trai.ch/wrotag/internal/core/domain"
)

// GroupCache is the read side of a loaded group cache.
//
//go:generate mockgen -source=group_cache.go -destination=mocks/mock_group_cache.go -package=mocks
type GroupCache interface {
	// Init loads the cache if needed. It is cheap once the cache is loaded.
	Init(ctx context.Context) error
	// Group returns the named group, or nil if it does not exist.
	Group(name string) (*domain.FilesGroup, error)
	// Groups returns all group names in lexical order.
	Groups() ([]string, error)
	// Stats returns the summary of the load.
	Stats() (domain.LoadStats, error)
}
