package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/wrotag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MinifiedPathSource = (*MinifiedDirSource)(nil)

// DefaultURLPrefix is the web path under which minified bundles are served.
const DefaultURLPrefix = "/min/"

// MinifiedDirSource lists the bundles of a minified-output directory as web paths.
type MinifiedDirSource struct {
	walker    *Walker
	root      string
	urlPrefix string
	ignores   []string
}

// NewMinifiedDirSource creates a source for the directory root. Files are reported
// as urlPrefix joined with their slash-separated path relative to root.
func NewMinifiedDirSource(walker *Walker, root, urlPrefix string, ignores []string) *MinifiedDirSource {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	return &MinifiedDirSource{
		walker:    walker,
		root:      filepath.Clean(root),
		urlPrefix: urlPrefix,
		ignores:   ignores,
	}
}

// Root returns the directory being listed.
func (s *MinifiedDirSource) Root() string {
	return s.root
}

// MinifiedPaths implements ports.MinifiedPathSource.
// A missing directory is reported as nil, meaning no bundles have been generated.
func (s *MinifiedDirSource) MinifiedPaths(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat minified directory"), "path", s.root)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.New("minified path is not a directory"), "path", s.root)
	}

	paths := []string{}
	for file, err := range s.walker.WalkFiles(s.root, s.ignores) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list minified directory"), "path", s.root)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, err := filepath.Rel(s.root, file)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize minified file"), "path", file)
		}
		paths = append(paths, s.webPath(rel))
	}

	return paths, nil
}

func (s *MinifiedDirSource) webPath(rel string) string {
	return strings.TrimSuffix(s.urlPrefix, "/") + "/" + path.Clean(filepath.ToSlash(rel))
}
