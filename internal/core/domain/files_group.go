package domain

import "slices"

// FilesGroup holds, for one group, the unminified files per resource type and
// the minified bundle found for each type, if any.
// It is populated while the cache loads and is read-only afterwards.
type FilesGroup struct {
	name     string
	files    map[ResourceType][]string
	minified map[ResourceType]string
}

// NewFilesGroup creates a FilesGroup from a model group, splitting its resources by type.
func NewFilesGroup(g Group) *FilesGroup {
	fg := &FilesGroup{
		name:     g.Name,
		files:    make(map[ResourceType][]string, len(ResourceTypes)),
		minified: make(map[ResourceType]string, len(ResourceTypes)),
	}
	for _, t := range ResourceTypes {
		fg.files[t] = g.ResourcesOfType(t)
	}
	return fg
}

// Name returns the group name.
func (g *FilesGroup) Name() string {
	return g.name
}

// Files returns a copy of the unminified files of the given type, in model order.
func (g *FilesGroup) Files(t ResourceType) []string {
	return slices.Clone(g.files[t])
}

// JSFiles returns the unminified JavaScript files.
func (g *FilesGroup) JSFiles() []string {
	return g.Files(JS)
}

// CSSFiles returns the unminified stylesheets.
func (g *FilesGroup) CSSFiles() []string {
	return g.Files(CSS)
}

// MinifiedFile returns the minified bundle of the given type.
func (g *FilesGroup) MinifiedFile(t ResourceType) (string, bool) {
	p, ok := g.minified[t]
	return p, ok
}

// setMinifiedFile records the bundle for a type. A later path for the same type replaces an earlier one.
func (g *FilesGroup) setMinifiedFile(t ResourceType, path string) {
	g.minified[t] = path
}
