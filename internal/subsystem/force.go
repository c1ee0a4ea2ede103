package subsystem

import (
	"sort"

	"moldyn/internal/logger"
	"moldyn/internal/packages"
	"moldyn/internal/style"
	"moldyn/pkg/simtypes"
)

// corePairStyles and coreBondStyles ship in every build regardless of
// installed packages.
var (
	corePairStyles = []string{"lj/cut", "coul/cut", "morse", "yukawa", "zero", "none"}
	coreBondStyles = []string{"zero", "none"}
)

// Force owns the interaction styles. Style availability is the core
// set plus every style owned by an installed package.
type Force struct {
	resolver  *style.Resolver
	available map[simtypes.StyleCategory]map[string]bool
	pairStyle string
	bondStyle string
}

// NewForce builds the force subsystem for a given build's installed
// package set. Pair and bond styles start as "none".
func NewForce(resolver *style.Resolver, installed *packages.Set) *Force {
	f := &Force{
		resolver:  resolver,
		available: make(map[simtypes.StyleCategory]map[string]bool),
		pairStyle: "none",
		bondStyle: "none",
	}
	f.available[simtypes.CategoryPair] = f.buildAvailable(simtypes.CategoryPair, corePairStyles, installed)
	f.available[simtypes.CategoryBond] = f.buildAvailable(simtypes.CategoryBond, coreBondStyles, installed)
	return f
}

func (f *Force) buildAvailable(category simtypes.StyleCategory, core []string, installed *packages.Set) map[string]bool {
	avail := make(map[string]bool, len(core))
	for _, keyword := range core {
		avail[keyword] = true
	}
	for _, name := range installed.Names() {
		for _, keyword := range style.OwnedBy(category, name) {
			avail[keyword] = true
		}
	}
	return avail
}

// SetPair resolves and activates a pair style, returning the resolved
// keyword.
func (f *Force) SetPair(keyword string) (string, error) {
	resolved, err := f.selectStyle(simtypes.CategoryPair, keyword)
	if err != nil {
		return "", err
	}
	f.pairStyle = resolved
	logger.Debug("pair style set", "style", resolved)
	return resolved, nil
}

// SetBond resolves and activates a bond style, returning the resolved
// keyword.
func (f *Force) SetBond(keyword string) (string, error) {
	resolved, err := f.selectStyle(simtypes.CategoryBond, keyword)
	if err != nil {
		return "", err
	}
	f.bondStyle = resolved
	logger.Debug("bond style set", "style", resolved)
	return resolved, nil
}

func (f *Force) selectStyle(category simtypes.StyleCategory, keyword string) (string, error) {
	candidates := f.resolver.Resolve(category, keyword)
	avail := f.available[category]
	for _, candidate := range candidates {
		if avail[candidate] {
			return candidate, nil
		}
	}
	return "", simtypes.UnknownStyleError{
		Category: category,
		Keyword:  keyword,
		Tried:    candidates,
	}
}

// PairStyle returns the active pair style keyword.
func (f *Force) PairStyle() string {
	return f.pairStyle
}

// BondStyle returns the active bond style keyword.
func (f *Force) BondStyle() string {
	return f.bondStyle
}

// Available lists the selectable styles for a category in sorted
// order.
func (f *Force) Available(category simtypes.StyleCategory) []string {
	avail := f.available[category]
	keywords := make([]string, 0, len(avail))
	for keyword := range avail {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}

// Has reports whether a style is selectable without resolution.
func (f *Force) Has(category simtypes.StyleCategory, keyword string) bool {
	return f.available[category][keyword]
}
