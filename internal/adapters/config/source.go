package config

import (
	"fmt"

	"go.trai.ch/wrotag/internal/adapters/fs"
	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports"
)

var (
	_ ports.ConfigSource = (*Source)(nil)
	_ ports.SourceLoader = (*SettingsLoader)(nil)
)

// Source pairs a model provider with a minified path source.
type Source struct {
	ports.ModelProvider
	ports.MinifiedPathSource
}

// NewSource creates a Source from its two collaborators.
func NewSource(models ports.ModelProvider, minified ports.MinifiedPathSource) *Source {
	return &Source{ModelProvider: models, MinifiedPathSource: minified}
}

// SettingsLoader implements ports.SourceLoader on top of wrotag.yaml settings.
type SettingsLoader struct {
	walker *fs.Walker
	logger ports.Logger
}

// NewSettingsLoader creates a new SettingsLoader.
func NewSettingsLoader(walker *fs.Walker, logger ports.Logger) *SettingsLoader {
	return &SettingsLoader{walker: walker, logger: logger}
}

// Load implements ports.SourceLoader.
func (l *SettingsLoader) Load(path string) (ports.ConfigSource, domain.CacheOptions, error) {
	settings, err := LoadSettings(path)
	if err != nil {
		return nil, domain.CacheOptions{}, err
	}
	if !settings.Found {
		l.logger.Warn(fmt.Sprintf("settings file %s not found, using defaults", path))
	}

	models, err := NewModelProvider(settings.Model)
	if err != nil {
		return nil, domain.CacheOptions{}, err
	}

	minified := fs.NewMinifiedDirSource(l.walker, settings.MinifiedDir, settings.URLPrefix, settings.Ignore)

	return NewSource(models, minified), domain.CacheOptions{StrictNames: settings.StrictNames}, nil
}
