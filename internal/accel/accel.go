// Package accel validates the accelerator-related portion of the
// command line against the installed package set and produces the
// engine's accelerator configuration: the backend variant, the suffix
// state driving style resolution, and the package invocation counts.
// It runs once during bootstrap, before any subsystem is constructed,
// so a bad request can never leave a half-built engine behind.
package accel

import (
	"strconv"

	"moldyn/internal/cmdline"
	"moldyn/internal/config"
	"moldyn/internal/logger"
	"moldyn/internal/packages"
	"moldyn/pkg/simtypes"
)

// Config is the validated accelerator configuration. Built once per
// engine instance and immutable afterward.
type Config struct {
	// Backend is the active variant: none, threaded CPU, or device.
	Backend simtypes.AcceleratorBackend

	// Suffix is the style suffix state installed into the engine.
	Suffix *simtypes.SuffixState

	// Invocations counts every validated -pk occurrence.
	Invocations int

	// PerPackage breaks the invocation count down by package.
	PerPackage map[simtypes.PackageName]int
}

// Build validates the accelerator flags in cl against the installed
// set and returns the finished configuration. The zero-flag case
// yields a disabled suffix state and the none backend.
func Build(cl *cmdline.CommandLine, installed *packages.Set, env *config.Environment) (*Config, error) {
	cfg := &Config{
		Backend:    simtypes.NoAccelerator{},
		Suffix:     simtypes.NewSuffixState(),
		PerPackage: make(map[simtypes.PackageName]int),
	}

	if err := applySuffixes(cl.SuffixTokens, installed, cfg.Suffix); err != nil {
		return nil, err
	}

	// Per-invocation settings picked up while validating -pk flags.
	// Only the ones matching the final backend variant take effect.
	omp := ompSettings{}
	deviceNeighbor := simtypes.DeviceNeighborFull

	for _, inv := range cl.Invocations {
		pkg, err := resolveInvocation(inv.Keyword, installed)
		if err != nil {
			return nil, err
		}

		switch pkg.Name {
		case packages.OpenMP:
			if err := omp.parse(inv.Args); err != nil {
				return nil, err
			}
		case packages.Kokkos:
			mode, err := parseKokkosArgs(inv.Args)
			if err != nil {
				return nil, err
			}
			if mode != "" {
				deviceNeighbor = mode
			}
		case packages.GPU:
			if err := parseGpuArgs(inv.Args); err != nil {
				return nil, err
			}
		case packages.Intel:
			if err := parseIntelArgs(inv.Args); err != nil {
				return nil, err
			}
		}

		cfg.Invocations++
		cfg.PerPackage[pkg.Name]++
	}

	switch {
	case cl.Kokkos != nil && cl.Kokkos.Enabled:
		if !installed.Installed(packages.Kokkos) {
			return nil, simtypes.UnavailablePackageError{Flag: "-k", Package: packages.Kokkos}
		}
		threads := cl.Kokkos.Threads
		if threads <= 0 {
			threads = 1
		}
		cfg.Backend = simtypes.DeviceBackend{
			Threads:  threads,
			Devices:  cl.Kokkos.Devices,
			Neighbor: deviceNeighbor,
		}

	case omp.requested || suffixActive(cfg.Suffix, "omp"):
		cfg.Backend = simtypes.ThreadedCPU{
			Threads:          resolveThreads(omp.threads, env),
			ThreadedNeighbor: omp.threadedNeighbor,
		}
	}

	logger.Debug("accelerator configuration built",
		"backend", cfg.Backend.Kind().String(),
		"threads", cfg.Backend.ThreadCount(),
		"suffixes", cfg.Suffix.Tokens(),
		"invocations", cfg.Invocations)

	return cfg, nil
}

// applySuffixes validates -sf tokens and installs them. A suffix no
// catalog package registers is a syntax error; a known suffix whose
// package is missing from this build is an availability error.
func applySuffixes(tokens []string, installed *packages.Set, state *simtypes.SuffixState) error {
	if len(tokens) == 0 {
		return nil
	}

	for _, token := range tokens {
		pkg, known := packages.FindSuffix(token)
		if !known {
			return simtypes.SyntaxError{Flag: "-sf", Detail: "unknown suffix " + token}
		}
		if !installed.Installed(pkg.Name) {
			return simtypes.UnavailablePackageError{Flag: "-sf", Package: pkg.Name}
		}
	}

	primary := tokens[0]
	secondary := ""
	if len(tokens) > 1 {
		secondary = tokens[1]
	}
	return state.Set(primary, secondary)
}

// resolveInvocation maps a -pk keyword to its installed package.
func resolveInvocation(keyword string, installed *packages.Set) (packages.Package, error) {
	if pkg, ok := installed.ByInvocation(keyword); ok {
		return pkg, nil
	}
	if pkg, ok := packages.FindInvocation(keyword); ok {
		return packages.Package{}, simtypes.UnavailablePackageError{Flag: "-pk", Package: pkg.Name}
	}
	return packages.Package{}, simtypes.SyntaxError{Flag: "-pk", Detail: "unknown package keyword " + keyword}
}

// ompSettings accumulates -pk omp arguments. Repeats overwrite, last
// one wins.
type ompSettings struct {
	requested        bool
	threads          int
	threadedNeighbor bool
}

// parse handles "-pk omp <threads> [neigh yes|no]". A thread count of
// zero defers to the environment.
func (o *ompSettings) parse(args []string) error {
	if len(args) == 0 {
		return simtypes.SyntaxError{Flag: "-pk", Detail: "omp needs a thread count"}
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return simtypes.SyntaxError{Flag: "-pk", Detail: "omp thread count must be a non-negative integer, got " + args[0]}
	}
	o.requested = true
	o.threads = n

	for i := 1; i < len(args); i += 2 {
		if i+1 >= len(args) {
			return simtypes.SyntaxError{Flag: "-pk", Detail: "omp option " + args[i] + " needs a value"}
		}
		switch args[i] {
		case "neigh":
			switch args[i+1] {
			case "yes":
				o.threadedNeighbor = true
			case "no":
				o.threadedNeighbor = false
			default:
				return simtypes.SyntaxError{Flag: "-pk", Detail: "omp neigh must be yes or no, got " + args[i+1]}
			}
		default:
			return simtypes.SyntaxError{Flag: "-pk", Detail: "unknown omp option " + args[i]}
		}
	}
	return nil
}

// parseKokkosArgs handles "-pk kokkos [neigh half|full]".
func parseKokkosArgs(args []string) (simtypes.DeviceNeighborMode, error) {
	var mode simtypes.DeviceNeighborMode
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			return "", simtypes.SyntaxError{Flag: "-pk", Detail: "kokkos option " + args[i] + " needs a value"}
		}
		switch args[i] {
		case "neigh":
			switch args[i+1] {
			case "half":
				mode = simtypes.DeviceNeighborHalf
			case "full":
				mode = simtypes.DeviceNeighborFull
			default:
				return "", simtypes.SyntaxError{Flag: "-pk", Detail: "kokkos neigh must be half or full, got " + args[i+1]}
			}
		default:
			return "", simtypes.SyntaxError{Flag: "-pk", Detail: "unknown kokkos option " + args[i]}
		}
	}
	return mode, nil
}

// parseGpuArgs handles "-pk gpu <devices> [neigh yes|no]".
func parseGpuArgs(args []string) error {
	if len(args) == 0 {
		return simtypes.SyntaxError{Flag: "-pk", Detail: "gpu needs a device count"}
	}
	if n, err := strconv.Atoi(args[0]); err != nil || n < 0 {
		return simtypes.SyntaxError{Flag: "-pk", Detail: "gpu device count must be a non-negative integer, got " + args[0]}
	}
	for i := 1; i < len(args); i += 2 {
		if i+1 >= len(args) {
			return simtypes.SyntaxError{Flag: "-pk", Detail: "gpu option " + args[i] + " needs a value"}
		}
		switch args[i] {
		case "neigh":
			if args[i+1] != "yes" && args[i+1] != "no" {
				return simtypes.SyntaxError{Flag: "-pk", Detail: "gpu neigh must be yes or no, got " + args[i+1]}
			}
		default:
			return simtypes.SyntaxError{Flag: "-pk", Detail: "unknown gpu option " + args[i]}
		}
	}
	return nil
}

// parseIntelArgs handles "-pk intel <coprocessors>".
func parseIntelArgs(args []string) error {
	if len(args) == 0 {
		return simtypes.SyntaxError{Flag: "-pk", Detail: "intel needs a coprocessor count"}
	}
	if n, err := strconv.Atoi(args[0]); err != nil || n < 0 {
		return simtypes.SyntaxError{Flag: "-pk", Detail: "intel coprocessor count must be a non-negative integer, got " + args[0]}
	}
	if len(args) > 1 {
		return simtypes.SyntaxError{Flag: "-pk", Detail: "unknown intel option " + args[1]}
	}
	return nil
}

// resolveThreads picks the threaded-CPU worker count: an explicit
// positive request wins, then the environment, then one.
func resolveThreads(requested int, env *config.Environment) int {
	if requested > 0 {
		return requested
	}
	if env != nil {
		if n := env.OMPThreads(); n > 0 {
			return n
		}
	}
	return 1
}

func suffixActive(state *simtypes.SuffixState, suffix string) bool {
	if !state.Enabled() {
		return false
	}
	return state.Primary() == suffix || state.Secondary() == suffix
}
