package domain

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// MinifiedName is a minified bundle path decomposed according to the naming
// convention of the optimizer output: "<group>-<suffix>.<ext>".
type MinifiedName struct {
	Path  string
	Group string
	Type  ResourceType
}

// ParseMinifiedName recovers the group name and resource type from a minified bundle path.
//
// The group is the base name, stripped of its final extension, up to the last
// hyphen: "/min/main-a1b2.js" belongs to "main" and "/min/foo-bar.min.js" to "foo".
// A base name without a hyphen, or one that starts with it, yields
// ErrMalformedMinifiedName. An extension other than js or css yields
// ErrUnknownResourceType.
func ParseMinifiedName(p string) (MinifiedName, error) {
	// Accept both URL-style and Windows-style separators.
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	i := strings.LastIndexByte(stem, '-')
	if i <= 0 {
		return MinifiedName{}, zerr.With(zerr.Wrap(ErrMalformedMinifiedName, ""), "path", p)
	}

	t, err := ParseResourceType(ext)
	if err != nil {
		return MinifiedName{}, zerr.With(err, "path", p)
	}

	return MinifiedName{
		Path:  p,
		Group: stem[:i],
		Type:  t,
	}, nil
}
