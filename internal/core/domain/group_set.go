package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// GroupSet maps group names to their FilesGroup.
type GroupSet struct {
	groups map[string]*FilesGroup
}

// NewGroupSet validates the model and builds one FilesGroup per group.
func NewGroupSet(m *Model) (*GroupSet, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	s := &GroupSet{groups: make(map[string]*FilesGroup, len(m.Groups))}
	for _, g := range m.Groups {
		s.groups[g.Name] = NewFilesGroup(g)
	}
	return s, nil
}

// Get returns the group with the given name, or nil if there is none.
func (s *GroupSet) Get(name string) *FilesGroup {
	return s.groups[name]
}

// Len returns the number of groups.
func (s *GroupSet) Len() int {
	return len(s.groups)
}

// Names returns the group names in lexical order.
func (s *GroupSet) Names() []string {
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Attach records a minified bundle on the group it names.
// It reports false, and changes nothing, when no such group exists.
func (s *GroupSet) Attach(n MinifiedName) bool {
	g, ok := s.groups[n.Group]
	if !ok {
		return false
	}
	g.setMinifiedFile(n.Type, n.Path)
	return true
}

// Digest returns a hash of the whole set: names, unminified files and minified bundles.
// Equal contents always produce the same digest.
func (s *GroupSet) Digest() string {
	hasher := xxhash.New()

	for _, name := range s.Names() {
		g := s.groups[name]
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0})

		for _, t := range ResourceTypes {
			_, _ = hasher.WriteString(t.String())
			_, _ = hasher.Write([]byte{0})
			for _, f := range g.files[t] {
				_, _ = hasher.WriteString(f)
				_, _ = hasher.Write([]byte{0})
			}
			_, _ = hasher.Write([]byte{0}) // Section separator
			if p, ok := g.minified[t]; ok {
				_, _ = hasher.WriteString(p)
			}
			_, _ = hasher.Write([]byte{0})
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
