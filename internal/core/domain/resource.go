// Package domain contains the core domain models for resource groups and their minified bundles.
package domain

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// ResourceType identifies the kind of a web resource.
type ResourceType int

const (
	// JS is a JavaScript resource.
	JS ResourceType = iota + 1
	// CSS is a stylesheet resource.
	CSS
)

// ResourceTypes lists every known resource type in a stable order.
var ResourceTypes = []ResourceType{JS, CSS}

// String returns the lowercase extension form of the type.
func (t ResourceType) String() string {
	switch t {
	case JS:
		return "js"
	case CSS:
		return "css"
	default:
		return "unknown"
	}
}

// ParseResourceType maps a file extension, with or without the leading dot, to a ResourceType.
func ParseResourceType(ext string) (ResourceType, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "js":
		return JS, nil
	case "css":
		return CSS, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownResourceType, ""), "extension", ext)
	}
}

// ResourceTypeOf derives the type of a resource from the extension of its URI.
func ResourceTypeOf(uri string) (ResourceType, error) {
	// Query strings and fragments are not part of the extension.
	if i := strings.IndexAny(uri, "?#"); i >= 0 {
		uri = uri[:i]
	}
	t, err := ParseResourceType(path.Ext(uri))
	if err != nil {
		return 0, zerr.With(err, "uri", uri)
	}
	return t, nil
}

// Resource is a single entry of a group.
type Resource struct {
	URI  string
	Type ResourceType
}

// Group is a named, ordered sequence of resources.
type Group struct {
	Name      string
	Resources []Resource
}

// ResourcesOfType returns the URIs of the resources of the given type, in declaration order.
func (g Group) ResourcesOfType(t ResourceType) []string {
	var uris []string
	for _, r := range g.Resources {
		if r.Type == t {
			uris = append(uris, r.URI)
		}
	}
	return uris
}

// Model is the resource model: the groups declared by the optimizer configuration.
type Model struct {
	Groups []Group
}

// Validate checks that every group has a name and that names are unique.
func (m *Model) Validate() error {
	seen := make(map[string]struct{}, len(m.Groups))
	for i, g := range m.Groups {
		if g.Name == "" {
			return zerr.With(zerr.Wrap(ErrEmptyGroupName, ""), "index", i)
		}
		if _, ok := seen[g.Name]; ok {
			return zerr.With(zerr.Wrap(ErrDuplicateGroup, ""), "group", g.Name)
		}
		seen[g.Name] = struct{}{}
	}
	return nil
}
