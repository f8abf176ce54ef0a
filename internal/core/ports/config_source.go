package ports

import (
	"context"

	"go.trai.ch/wrotag/internal/core/domain"
)

// ModelProvider supplies the resource model.
//
//go:generate mockgen -source=config_source.go -destination=mocks/mock_config_source.go -package=mocks
type ModelProvider interface {
	// Model returns the groups declared by the optimizer configuration.
	Model(ctx context.Context) (*domain.Model, error)
}

// MinifiedPathSource supplies the paths present in the minified-output directory.
type MinifiedPathSource interface {
	// MinifiedPaths returns the bundle paths. A nil slice means there is no output directory.
	MinifiedPaths(ctx context.Context) ([]string, error)
}

// ConfigSource is the configuration object a cache is created from.
type ConfigSource interface {
	ModelProvider
	MinifiedPathSource
}

// SourceLoader builds a ConfigSource from a settings file.
type SourceLoader interface {
	// Load reads the settings at path and returns the configuration source they describe,
	// together with the cache options they select.
	Load(path string) (ConfigSource, domain.CacheOptions, error)
}
