// Package packages describes the optional feature packages a MolDyn
// build can be compiled with and tracks which of them are present in
// the running binary. Accelerator packages additionally carry the
// suffix and invocation keywords used by command line dispatch.
package packages

import (
	"sort"

	"moldyn/pkg/simtypes"
)

// Well-known package names. The catalog below is the authoritative
// list; these constants exist so callers do not scatter string
// literals.
const (
	Molecule   simtypes.PackageName = "MOLECULE"
	Kokkos     simtypes.PackageName = "KOKKOS"
	OpenMP     simtypes.PackageName = "USER-OMP"
	GPU        simtypes.PackageName = "GPU"
	Intel      simtypes.PackageName = "USER-INTEL"
	KSpace     simtypes.PackageName = "KSPACE"
	ManyBody   simtypes.PackageName = "MANYBODY"
	Dipole     simtypes.PackageName = "DIPOLE"
	Peri       simtypes.PackageName = "PERI"
	Spin       simtypes.PackageName = "SPIN"
	Wavepacket simtypes.PackageName = "USER-AWPMD"
	DPD        simtypes.PackageName = "USER-DPD"
	MesoDPD    simtypes.PackageName = "USER-MESODPD"
	SMD        simtypes.PackageName = "USER-SMD"
	SPH        simtypes.PackageName = "USER-SPH"
)

// Package describes one optional feature package.
type Package struct {
	// Name is the canonical upper-case package name.
	Name simtypes.PackageName

	// Description is a one-line summary shown by the help banner.
	Description string

	// Suffix is the style suffix the package registers for accelerated
	// variants, empty for packages that only add new styles.
	Suffix string

	// Invocation is the keyword the -pk command line flag accepts for
	// this package, empty for packages without runtime options.
	Invocation string

	// Citation is printed by the citation tracker when the package
	// contributes to a run.
	Citation string
}

// Accelerator reports whether the package participates in suffix
// dispatch.
func (p Package) Accelerator() bool {
	return p.Suffix != ""
}

// catalog is the full set of packages this source tree knows how to
// build. Which subset is actually compiled in is a property of the
// binary, represented by Set.
var catalog = map[simtypes.PackageName]Package{
	Molecule: {
		Name:        Molecule,
		Description: "molecular topology: bonds, angles, dihedrals, impropers",
	},
	Kokkos: {
		Name:        Kokkos,
		Description: "device-portable styles via the Kokkos runtime",
		Suffix:      "kk",
		Invocation:  "kokkos",
		Citation:    "Trott et al., Kokkos 3: Programming Model Extensions for the Exascale Era (2022)",
	},
	OpenMP: {
		Name:        OpenMP,
		Description: "OpenMP threaded variants of pair, bond, and fix styles",
		Suffix:      "omp",
		Invocation:  "omp",
		Citation:    "Plimpton, Fast Parallel Algorithms for Short-Range Molecular Dynamics (1995)",
	},
	GPU: {
		Name:        GPU,
		Description: "GPU offload variants of pair styles and neighbor builds",
		Suffix:      "gpu",
		Invocation:  "gpu",
		Citation:    "Brown et al., Implementing Molecular Dynamics on Hybrid High Performance Computers (2011)",
	},
	Intel: {
		Name:        Intel,
		Description: "vectorized variants tuned for Intel hardware",
		Suffix:      "intel",
		Invocation:  "intel",
	},
	KSpace: {
		Name:        KSpace,
		Description: "long-range Coulombic solvers",
	},
	ManyBody: {
		Name:        ManyBody,
		Description: "many-body potentials",
	},
	Dipole: {
		Name:        Dipole,
		Description: "point dipole particles",
	},
	Peri: {
		Name:        Peri,
		Description: "peridynamics particles",
	},
	Spin: {
		Name:        Spin,
		Description: "magnetic spin dynamics",
	},
	Wavepacket: {
		Name:        Wavepacket,
		Description: "antisymmetrized wave packet molecular dynamics",
	},
	DPD: {
		Name:        DPD,
		Description: "reactive dissipative particle dynamics",
	},
	MesoDPD: {
		Name:        MesoDPD,
		Description: "mesoscale dissipative particle dynamics variants",
	},
	SMD: {
		Name:        SMD,
		Description: "smoothed Mach dynamics for solids",
	},
	SPH: {
		Name:        SPH,
		Description: "smoothed particle hydrodynamics",
	},
}

// Known reports whether name appears in the catalog.
func Known(name simtypes.PackageName) bool {
	_, ok := catalog[name]
	return ok
}

// Lookup returns the catalog entry for name.
func Lookup(name simtypes.PackageName) (Package, bool) {
	p, ok := catalog[name]
	return p, ok
}

// All returns every catalog entry sorted by package name.
func All() []Package {
	out := make([]Package, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Accelerators returns the catalog entries that participate in suffix
// dispatch, sorted by package name.
func Accelerators() []Package {
	var out []Package
	for _, p := range catalog {
		if p.Accelerator() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindSuffix returns the catalog entry that registers the given style
// suffix, regardless of whether it is installed in this build.
func FindSuffix(suffix string) (Package, bool) {
	for _, p := range catalog {
		if p.Suffix != "" && p.Suffix == suffix {
			return p, true
		}
	}
	return Package{}, false
}

// FindInvocation returns the catalog entry whose -pk keyword matches,
// regardless of whether it is installed in this build.
func FindInvocation(keyword string) (Package, bool) {
	for _, p := range catalog {
		if p.Invocation != "" && p.Invocation == keyword {
			return p, true
		}
	}
	return Package{}, false
}
