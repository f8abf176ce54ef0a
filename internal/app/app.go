// Package app implements the application layer for wrotag.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.SourceLoader
	logger ports.Logger
	holder *Holder
	out    io.Writer
}

// New creates a new App instance.
func New(loader ports.SourceLoader, logger ports.Logger, holder *Holder) *App {
	return &App{
		loader: loader,
		logger: logger,
		holder: holder,
		out:    os.Stdout,
	}
}

// SetOutput sets the writer command results are printed to.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Configure loads the settings file and creates the cache from it.
// strict forces StrictNames on regardless of the settings.
func (a *App) Configure(settingsPath string, strict bool) error {
	source, opts, err := a.loader.Load(settingsPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	opts.StrictNames = opts.StrictNames || strict
	return a.holder.Create(source, opts)
}

// Cache returns the loaded cache.
func (a *App) Cache(ctx context.Context) (*Cache, error) {
	return a.holder.Instance(ctx)
}

// GroupCache returns the cache without loading it, for callers that load lazily.
func (a *App) GroupCache() (ports.GroupCache, error) {
	return a.holder.Cache()
}

// ListGroups prints every group with its file counts and minified bundles.
func (a *App) ListGroups(ctx context.Context) error {
	cache, err := a.Cache(ctx)
	if err != nil {
		return err
	}
	names, err := cache.Groups()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "GROUP\tJS\tCSS\tMINIFIED")
	for _, name := range names {
		g, err := cache.Group(name)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			name, len(g.JSFiles()), len(g.CSSFiles()), minifiedSummary(g))
	}
	return w.Flush()
}

// ShowGroup prints the files of one group.
func (a *App) ShowGroup(ctx context.Context, name string) error {
	cache, err := a.Cache(ctx)
	if err != nil {
		return err
	}
	g, err := cache.Group(name)
	if err != nil {
		return err
	}
	if g == nil {
		return zerr.With(zerr.Wrap(domain.ErrGroupNotFound, ""), "group", name)
	}

	_, _ = fmt.Fprintf(a.out, "group %s\n", g.Name())
	for _, t := range domain.ResourceTypes {
		_, _ = fmt.Fprintf(a.out, "%s:\n", t)
		for _, f := range g.Files(t) {
			_, _ = fmt.Fprintf(a.out, "  %s\n", f)
		}
		if p, ok := g.MinifiedFile(t); ok {
			_, _ = fmt.Fprintf(a.out, "  minified: %s\n", p)
		}
	}
	return nil
}

// Check loads the cache and prints the load summary.
func (a *App) Check(ctx context.Context) (domain.LoadStats, error) {
	cache, err := a.Cache(ctx)
	if err != nil {
		return domain.LoadStats{}, err
	}
	stats, err := cache.Stats()
	if err != nil {
		return domain.LoadStats{}, err
	}

	_, _ = fmt.Fprintf(a.out, "groups:    %d\n", stats.Groups)
	_, _ = fmt.Fprintf(a.out, "attached:  %d\n", stats.Attached)
	_, _ = fmt.Fprintf(a.out, "unmatched: %d\n", stats.Unmatched)
	_, _ = fmt.Fprintf(a.out, "malformed: %d\n", stats.Malformed)
	_, _ = fmt.Fprintf(a.out, "digest:    %s\n", stats.Digest)
	return stats, nil
}

func minifiedSummary(g *domain.FilesGroup) string {
	var parts []string
	for _, t := range domain.ResourceTypes {
		if p, ok := g.MinifiedFile(t); ok {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
