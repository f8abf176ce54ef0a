package app

import (
	"context"
	"sync"

	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports"
)

// Holder owns the single Cache of a process. It is created by the composition
// root and handed to whoever needs the cache; Create supplies the configuration
// source once at startup.
type Holder struct {
	logger ports.Logger

	mu    sync.Mutex
	cache *Cache
}

// NewHolder creates an empty Holder.
func NewHolder(logger ports.Logger) *Holder {
	return &Holder{logger: logger}
}

// Create builds the cache from source. Once a cache exists, later calls do nothing.
func (h *Holder) Create(source ports.ConfigSource, opts domain.CacheOptions) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cache != nil {
		return nil
	}

	cache, err := NewCache(source, h.logger, opts)
	if err != nil {
		return err
	}
	h.cache = cache
	return nil
}

// Cache returns the cache without loading it.
// It fails with ErrNotConstructed when Create was never called successfully.
func (h *Holder) Cache() (*Cache, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cache == nil {
		return nil, domain.ErrNotConstructed
	}
	return h.cache, nil
}

// Instance returns the cache, loading it on first use.
// It fails with ErrNotConstructed when Create was never called successfully.
func (h *Holder) Instance(ctx context.Context) (*Cache, error) {
	cache, err := h.Cache()
	if err != nil {
		return nil, err
	}
	if err := cache.Init(ctx); err != nil {
		return nil, err
	}
	return cache, nil
}
