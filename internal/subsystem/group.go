package subsystem

import (
	"fmt"
	"sort"
)

// Groups names subsets of atoms referenced by fixes and deck commands.
// The "all" group always exists.
type Groups struct {
	defined map[string][]string
	order   []string
}

// NewGroups builds the group subsystem with the predefined all group.
func NewGroups() *Groups {
	g := &Groups{defined: make(map[string][]string)}
	g.defined["all"] = nil
	g.order = append(g.order, "all")
	return g
}

// Define creates or replaces a named group with its selection
// arguments. The all group cannot be redefined.
func (g *Groups) Define(name string, args ...string) error {
	if name == "" {
		return fmt.Errorf("group name cannot be empty")
	}
	if name == "all" {
		return fmt.Errorf("group all cannot be redefined")
	}
	if _, exists := g.defined[name]; !exists {
		g.order = append(g.order, name)
	}
	g.defined[name] = append([]string(nil), args...)
	return nil
}

// Delete removes a named group. The all group cannot be deleted.
func (g *Groups) Delete(name string) error {
	if name == "all" {
		return fmt.Errorf("group all cannot be deleted")
	}
	if _, exists := g.defined[name]; !exists {
		return fmt.Errorf("group %s does not exist", name)
	}
	delete(g.defined, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}

// Has reports whether a group exists.
func (g *Groups) Has(name string) bool {
	_, ok := g.defined[name]
	return ok
}

// Args returns the selection arguments of a group.
func (g *Groups) Args(name string) ([]string, bool) {
	args, ok := g.defined[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), args...), true
}

// Names returns the defined group names in sorted order.
func (g *Groups) Names() []string {
	out := make([]string, 0, len(g.defined))
	for name := range g.defined {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of defined groups.
func (g *Groups) Count() int {
	return len(g.defined)
}
