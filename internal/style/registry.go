// Package style implements keyword-based dispatch for the engine's
// swappable simulation behaviors. A style is identified by a category
// and a keyword; optional feature packages contribute keywords beyond
// the always-available core set, and accelerator packages contribute
// suffixed variants of existing keywords. The registry records which
// package owns each contributed keyword, the resolver turns a base
// keyword plus the active suffix state into an ordered candidate list,
// and the factory composes the two to pick the concrete implementation.
package style

import (
	"sort"

	"moldyn/internal/packages"
	"moldyn/pkg/simtypes"
)

// registry maps each package-contributed style keyword to its owning
// package, per category. Keywords absent from the table are core styles
// available in every build. The table is fixed at compile time and
// extended only by adding entries here when a package gains a style.
var registry = map[simtypes.StyleCategory]map[string]simtypes.PackageName{
	simtypes.CategoryAtom: {
		"angle":     packages.Molecule,
		"bond":      packages.Molecule,
		"full":      packages.Molecule,
		"molecular": packages.Molecule,
		"template":  packages.Molecule,

		"angle/kk":     packages.Kokkos,
		"atomic/kk":    packages.Kokkos,
		"bond/kk":      packages.Kokkos,
		"charge/kk":    packages.Kokkos,
		"full/kk":      packages.Kokkos,
		"hybrid/kk":    packages.Kokkos,
		"molecular/kk": packages.Kokkos,
		"sphere/kk":    packages.Kokkos,
		"spin/kk":      packages.Kokkos,

		"dipole":     packages.Dipole,
		"peri":       packages.Peri,
		"spin":       packages.Spin,
		"wavepacket": packages.Wavepacket,
		"dpd":        packages.DPD,
		"edpd":       packages.MesoDPD,
		"mdpd":       packages.MesoDPD,
		"tdpd":       packages.MesoDPD,
		"smd":        packages.SMD,
		"meso":       packages.SPH,
	},
	simtypes.CategoryPair: {
		"eam":              packages.ManyBody,
		"sw":               packages.ManyBody,
		"tersoff":          packages.ManyBody,
		"lj/cut/coul/long": packages.KSpace,
		"dpd/fdt":          packages.DPD,
		"sph/taitwater":    packages.SPH,
		"smd/tlsph":        packages.SMD,

		"lj/cut/kk":  packages.Kokkos,
		"tersoff/kk": packages.Kokkos,
		"lj/cut/omp": packages.OpenMP,
		"eam/omp":    packages.OpenMP,
		"lj/cut/gpu": packages.GPU,
	},
	simtypes.CategoryBond: {
		"fene":     packages.Molecule,
		"gromos":   packages.Molecule,
		"harmonic": packages.Molecule,
		"morse":    packages.Molecule,

		"fene/kk":      packages.Kokkos,
		"harmonic/kk":  packages.Kokkos,
		"harmonic/omp": packages.OpenMP,
	},
	simtypes.CategoryFix: {
		"nve/spin":   packages.Spin,
		"dpd/energy": packages.DPD,
		"meso/move":  packages.SPH,

		"nve/kk":       packages.Kokkos,
		"setforce/kk":  packages.Kokkos,
		"nve/omp":      packages.OpenMP,
		"setforce/omp": packages.OpenMP,
	},
}

// Lookup returns the package that owns the given style keyword. The
// second result is false when the keyword is not in the table, which
// callers treat as "core style, always available" rather than as an
// error. Matching is exact and case-sensitive.
func Lookup(category simtypes.StyleCategory, keyword string) (simtypes.PackageName, bool) {
	entries, ok := registry[category]
	if !ok {
		return "", false
	}
	pkg, ok := entries[keyword]
	return pkg, ok
}

// Keywords returns the package-contributed keywords registered for a
// category, sorted for stable diagnostics.
func Keywords(category simtypes.StyleCategory) []string {
	entries := registry[category]
	out := make([]string, 0, len(entries))
	for kw := range entries {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// OwnedBy returns the keywords a single package contributes to the
// given category, sorted. Used by banner and citation reporting.
func OwnedBy(category simtypes.StyleCategory, pkg simtypes.PackageName) []string {
	var out []string
	for kw, owner := range registry[category] {
		if owner == pkg {
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}
