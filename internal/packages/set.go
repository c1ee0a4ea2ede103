package packages

import (
	"sort"

	"moldyn/pkg/simtypes"
)

// Set is the subset of the catalog compiled into a particular binary.
// Bootstrap consults it when validating -sf and -pk requests, so tests
// can model stripped-down builds by constructing smaller sets.
type Set struct {
	installed map[simtypes.PackageName]Package
}

// DefaultSet returns a set containing every catalog entry. This mirrors
// a full build and is what the engine uses unless the caller injects
// its own set.
func DefaultSet() *Set {
	s := &Set{installed: make(map[simtypes.PackageName]Package, len(catalog))}
	for name, p := range catalog {
		s.installed[name] = p
	}
	return s
}

// NewSet returns a set containing only the named packages. Names the
// catalog does not know are ignored.
func NewSet(names ...simtypes.PackageName) *Set {
	s := &Set{installed: make(map[simtypes.PackageName]Package, len(names))}
	for _, name := range names {
		if p, ok := catalog[name]; ok {
			s.installed[name] = p
		}
	}
	return s
}

// Installed reports whether the named package is present in this build.
func (s *Set) Installed(name simtypes.PackageName) bool {
	_, ok := s.installed[name]
	return ok
}

// Lookup returns the installed package with the given name.
func (s *Set) Lookup(name simtypes.PackageName) (Package, bool) {
	p, ok := s.installed[name]
	return p, ok
}

// ByInvocation returns the installed accelerator package whose -pk
// keyword matches. Keywords are matched case-sensitively.
func (s *Set) ByInvocation(keyword string) (Package, bool) {
	for _, p := range s.installed {
		if p.Invocation != "" && p.Invocation == keyword {
			return p, true
		}
	}
	return Package{}, false
}

// BySuffix returns the installed accelerator package that registers the
// given style suffix.
func (s *Set) BySuffix(suffix string) (Package, bool) {
	for _, p := range s.installed {
		if p.Suffix != "" && p.Suffix == suffix {
			return p, true
		}
	}
	return Package{}, false
}

// Names returns the installed package names in sorted order.
func (s *Set) Names() []simtypes.PackageName {
	out := make([]simtypes.PackageName, 0, len(s.installed))
	for name := range s.installed {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// List returns the installed packages sorted by name.
func (s *Set) List() []Package {
	out := make([]Package, 0, len(s.installed))
	for _, p := range s.installed {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of installed packages.
func (s *Set) Count() int {
	return len(s.installed)
}
