// Package config loads wrotag settings and the resource model files they point to.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wrotag/internal/adapters/fs"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultSettingsFile is the settings file name looked up when none is given.
	DefaultSettingsFile = "wrotag.yaml"
	// DefaultModelFile is the model file used when the settings do not name one.
	DefaultModelFile = "wro.xml"
	// DefaultMinifiedDir is the minified-output directory used when the settings do not name one.
	DefaultMinifiedDir = "min"
)

// Settings are the resolved settings: every path is absolute or relative to the
// working directory, defaults are applied.
type Settings struct {
	// Found reports whether the settings file existed.
	Found       bool
	Model       string
	MinifiedDir string
	URLPrefix   string
	Ignore      []string
	StrictNames bool
}

// LoadSettings reads the settings file at path. A missing file yields the defaults,
// resolved against the directory path would live in.
func LoadSettings(path string) (*Settings, error) {
	var file SettingsFile
	found := true

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		found = false
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
		}
	}

	base := filepath.Dir(path)
	s := &Settings{
		Found:       found,
		Model:       resolve(base, file.Model, DefaultModelFile),
		MinifiedDir: resolve(base, file.Minified.Dir, DefaultMinifiedDir),
		URLPrefix:   file.Minified.URLPrefix,
		Ignore:      file.Minified.Ignore,
		StrictNames: file.StrictNames,
	}
	if s.URLPrefix == "" {
		s.URLPrefix = fs.DefaultURLPrefix
	}

	return s, nil
}

func resolve(base, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(base, value)
}
