// Package simtypes defines the core architectural types for MolDyn.
// It contains the contracts shared between the bootstrap layer, the style
// dispatch machinery, and embedders of the engine: style categories and
// package names, suffix dispatch state, the accelerator backend variants,
// and the communicator handle an embedder supplies at construction time.
package simtypes

import "sort"

// StyleCategory is the namespace a style keyword belongs to. The set of
// categories is fixed by the engine's extensibility surface; it can only
// grow by recompilation.
type StyleCategory string

const (
	// CategoryAtom names the per-atom representation styles.
	CategoryAtom StyleCategory = "atom"
	// CategoryPair names the pairwise interaction styles.
	CategoryPair StyleCategory = "pair"
	// CategoryBond names the bonded interaction styles.
	CategoryBond StyleCategory = "bond"
	// CategoryFix names the time-integration and constraint styles.
	CategoryFix StyleCategory = "fix"
)

// Categories returns all style categories in stable order.
func Categories() []StyleCategory {
	return []StyleCategory{CategoryAtom, CategoryPair, CategoryBond, CategoryFix}
}

// Valid reports whether c is one of the known style categories.
func (c StyleCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// PackageName identifies an optional compiled-in module group, e.g.
// "MOLECULE" or "KOKKOS". A package may be absent from a given build;
// absence is a queryable condition, never a crash.
type PackageName string

// SuffixSeparator joins a base style keyword with a variant suffix,
// as in "full/kk".
const SuffixSeparator = "/"

// SortedPackageNames returns the given names sorted lexically. Helper for
// deterministic reporting of package sets.
func SortedPackageNames(names []PackageName) []PackageName {
	out := make([]PackageName, len(names))
	copy(out, names)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
