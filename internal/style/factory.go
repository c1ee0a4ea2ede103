package style

import (
	"sort"

	"moldyn/internal/logger"
	"moldyn/pkg/simtypes"
)

// Creator constructs a concrete atom style implementation.
type Creator func() simtypes.AtomStyle

// AtomFactory holds the atom styles constructible in this build. Core
// styles are always present; package styles are registered during
// bootstrap for each installed package, so an absent package simply
// leaves its keywords unregistered and resolution falls through to the
// base variant or reports an unknown style.
type AtomFactory struct {
	creators map[string]Creator
}

// NewAtomFactory returns an empty factory. Callers populate it with
// Register or RegisterDefaults.
func NewAtomFactory() *AtomFactory {
	return &AtomFactory{creators: make(map[string]Creator)}
}

// Register makes keyword constructible. A later registration for the
// same keyword replaces the earlier one.
func (f *AtomFactory) Register(keyword string, create Creator) {
	f.creators[keyword] = create
}

// Has reports whether keyword is constructible without resolving
// suffix variants.
func (f *AtomFactory) Has(keyword string) bool {
	_, ok := f.creators[keyword]
	return ok
}

// Keywords returns every registered keyword in sorted order.
func (f *AtomFactory) Keywords() []string {
	out := make([]string, 0, len(f.creators))
	for kw := range f.creators {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// Create resolves base through the resolver and constructs the first
// candidate with a registered implementation. The winning keyword is
// returned alongside the style so callers can report which variant was
// selected. When no candidate matches, the returned UnknownStyleError
// lists every keyword that was tried.
func (f *AtomFactory) Create(resolver *Resolver, base string) (simtypes.AtomStyle, string, error) {
	candidates := resolver.Resolve(simtypes.CategoryAtom, base)
	for _, keyword := range candidates {
		if create, ok := f.creators[keyword]; ok {
			logger.Debug("atom style selected", "requested", base, "selected", keyword)
			return create(), keyword, nil
		}
	}
	return nil, "", simtypes.UnknownStyleError{
		Category: simtypes.CategoryAtom,
		Keyword:  base,
		Tried:    candidates,
	}
}
