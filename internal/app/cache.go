package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Cache keeps, per resource group, the unminified files declared in the model
// and the minified bundles found next to them.
//
// The cache loads once. Concurrent callers of Init block until that load ends
// and then share its outcome; after a successful load the mapping is read
// without locking. A failed load is not retried, except when it failed because
// the caller's context was done.
type Cache struct {
	source ports.ConfigSource
	logger ports.Logger
	opts   domain.CacheOptions

	mu          sync.Mutex
	initialized atomic.Bool
	loadErr     error
	groups      *domain.GroupSet
	stats       domain.LoadStats
}

// NewCache creates a cache reading from source. Nothing is loaded until Init is called.
func NewCache(source ports.ConfigSource, logger ports.Logger, opts domain.CacheOptions) (*Cache, error) {
	if source == nil {
		return nil, domain.ErrNilSource
	}
	return &Cache{
		source: source,
		logger: logger,
		opts:   opts,
	}, nil
}

// Source returns the configuration source the cache was created from.
func (c *Cache) Source() ports.ConfigSource {
	return c.source
}

// Init loads the cache if it has not been loaded yet.
func (c *Cache) Init(ctx context.Context) error {
	if c.initialized.Load() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized.Load() {
		return nil
	}
	if c.loadErr != nil {
		return c.loadErr
	}

	groups, stats, err := c.load(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// The next caller loads again.
			return errors.Join(domain.ErrNotInitialized, err)
		}
		c.loadErr = errors.Join(domain.ErrNotInitialized, err)
		return c.loadErr
	}

	c.groups = groups
	c.stats = stats
	c.initialized.Store(true)
	return nil
}

// Group returns the files of the named group, or nil if the model has no such group.
func (c *Cache) Group(name string) (*domain.FilesGroup, error) {
	if !c.initialized.Load() {
		return nil, c.notInitialized()
	}
	return c.groups.Get(name), nil
}

// Groups returns the names of all groups in lexical order.
func (c *Cache) Groups() ([]string, error) {
	if !c.initialized.Load() {
		return nil, c.notInitialized()
	}
	return c.groups.Names(), nil
}

// Stats returns the summary of the load.
func (c *Cache) Stats() (domain.LoadStats, error) {
	if !c.initialized.Load() {
		return domain.LoadStats{}, c.notInitialized()
	}
	return c.stats, nil
}

func (c *Cache) notInitialized() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadErr != nil {
		return c.loadErr
	}
	return domain.ErrNotInitialized
}

func (c *Cache) load(ctx context.Context) (*domain.GroupSet, domain.LoadStats, error) {
	var (
		model *domain.Model
		paths []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := c.source.Model(gctx)
		if err != nil {
			return zerr.Wrap(err, "failed to load resource model")
		}
		model = m
		return nil
	})
	g.Go(func() error {
		p, err := c.source.MinifiedPaths(gctx)
		if err != nil {
			return zerr.Wrap(err, "failed to list minified files")
		}
		paths = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domain.LoadStats{}, err
	}

	groups, err := domain.NewGroupSet(model)
	if err != nil {
		return nil, domain.LoadStats{}, err
	}

	stats := domain.LoadStats{Groups: groups.Len()}
	for _, p := range paths {
		name, err := domain.ParseMinifiedName(p)
		if err != nil {
			if c.opts.StrictNames {
				return nil, domain.LoadStats{}, err
			}
			c.logger.Warn(fmt.Sprintf("skipping minified file %s: %v", p, err))
			stats.Malformed++
			continue
		}

		if groups.Attach(name) {
			stats.Attached++
		} else {
			stats.Unmatched++
		}
	}
	stats.Digest = groups.Digest()

	c.logger.Info(fmt.Sprintf(
		"loaded %d groups, attached %d minified files (%d unmatched, %d malformed)",
		stats.Groups, stats.Attached, stats.Unmatched, stats.Malformed,
	))

	return groups, stats, nil
}

var _ ports.GroupCache = (*Cache)(nil)
