package subsystem

import (
	"fmt"

	"moldyn/internal/logger"
	"moldyn/internal/packages"
	"moldyn/internal/style"
	"moldyn/pkg/simtypes"
)

// Fix is a constraint or integrator applied every timestep.
type Fix struct {
	ID      string
	Group   string
	Style   string
	Args    []string
	Package simtypes.PackageName
}

// coreFixStyles are available without any package installed.
var coreFixStyles = []string{"nve", "nvt", "npt", "setforce", "addforce", "langevin"}

// Modify maintains the ordered list of active fixes.
type Modify struct {
	resolver  *style.Resolver
	available map[string]bool
	owners    map[string]simtypes.PackageName
	fixes     []Fix
	index     map[string]int
}

// NewModify builds the modify subsystem for a given build's installed
// package set.
func NewModify(resolver *style.Resolver, installed *packages.Set) *Modify {
	m := &Modify{
		resolver:  resolver,
		available: make(map[string]bool),
		owners:    make(map[string]simtypes.PackageName),
		index:     make(map[string]int),
	}
	for _, keyword := range coreFixStyles {
		m.available[keyword] = true
	}
	for _, name := range installed.Names() {
		for _, keyword := range style.OwnedBy(simtypes.CategoryFix, name) {
			m.available[keyword] = true
			m.owners[keyword] = name
		}
	}
	return m
}

// AddFix resolves a fix style and appends it to the fix list. Fix IDs
// must be unique.
func (m *Modify) AddFix(id, group, keyword string, args ...string) (Fix, error) {
	if _, exists := m.index[id]; exists {
		return Fix{}, fmt.Errorf("fix ID %s is already in use", id)
	}
	candidates := m.resolver.Resolve(simtypes.CategoryFix, keyword)
	resolved := ""
	for _, candidate := range candidates {
		if m.available[candidate] {
			resolved = candidate
			break
		}
	}
	if resolved == "" {
		return Fix{}, simtypes.UnknownStyleError{
			Category: simtypes.CategoryFix,
			Keyword:  keyword,
			Tried:    candidates,
		}
	}
	fix := Fix{
		ID:      id,
		Group:   group,
		Style:   resolved,
		Args:    args,
		Package: m.owners[resolved],
	}
	m.index[id] = len(m.fixes)
	m.fixes = append(m.fixes, fix)
	logger.Debug("fix added", "style", resolved, "id", id)
	return fix, nil
}

// RemoveFix deletes a fix by ID.
func (m *Modify) RemoveFix(id string) error {
	pos, ok := m.index[id]
	if !ok {
		return fmt.Errorf("fix ID %s does not exist", id)
	}
	m.fixes = append(m.fixes[:pos], m.fixes[pos+1:]...)
	delete(m.index, id)
	for i := pos; i < len(m.fixes); i++ {
		m.index[m.fixes[i].ID] = i
	}
	return nil
}

// Fixes returns the active fixes in definition order.
func (m *Modify) Fixes() []Fix {
	out := make([]Fix, len(m.fixes))
	copy(out, m.fixes)
	return out
}

// Find returns the fix with a given ID.
func (m *Modify) Find(id string) (Fix, bool) {
	pos, ok := m.index[id]
	if !ok {
		return Fix{}, false
	}
	return m.fixes[pos], true
}

// Has reports whether a fix style is selectable without resolution.
func (m *Modify) Has(keyword string) bool {
	return m.available[keyword]
}
