// Package engine implements the simulation object life cycle: argument
// parsing, accelerator configuration, ordered subsystem construction,
// deck processing, and reverse-order teardown. One Engine instance is
// one simulation; a process may create several in sequence.
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"moldyn/internal/accel"
	"moldyn/internal/cite"
	"moldyn/internal/cmdline"
	"moldyn/internal/config"
	"moldyn/internal/input"
	"moldyn/internal/logger"
	"moldyn/internal/packages"
	"moldyn/internal/screen"
	"moldyn/internal/style"
	"moldyn/internal/subsystem"
	"moldyn/internal/version"
	"moldyn/pkg/simtypes"
)

// teardownStep pairs a subsystem name with its release action. Steps
// run in reverse append order.
type teardownStep struct {
	name  string
	close func() error
}

// Engine is the top-level simulation object. Subsystem fields are nil
// until construction reaches them and after teardown.
type Engine struct {
	state State

	CommandLine *cmdline.CommandLine
	Accel       *accel.Config
	Installed   *packages.Set
	Env         *config.Environment

	Screen   *screen.Printer
	Memory   *subsystem.Arena
	Reporter *subsystem.Reporter
	Universe *subsystem.Universe
	Input    *input.Reader
	Atom     *subsystem.Atoms
	Update   *subsystem.Update
	Neighbor *subsystem.Neighbor
	Comm     *subsystem.Comm
	Domain   *subsystem.Domain
	Force    *subsystem.Force
	Modify   *subsystem.Modify
	Group    *subsystem.Groups
	Output   *subsystem.Output
	Timer    *subsystem.Timer
	Cite     *cite.Tracker

	// Device contexts exist only under the device backend.
	Device       *accel.Runtime
	DeviceAtoms  *accel.AtomMirror
	DeviceMemory *accel.MemoryPool

	factory  *style.AtomFactory
	resolver *style.Resolver

	teardown []teardownStep
	closed   bool
}

// New bootstraps an engine from an argument vector. On any failure the
// already-built subsystems are released in reverse order and the error
// names the phase that failed. A help request stops after the banner
// with no subsystems constructed.
func New(argv []string, comm simtypes.Communicator, opts ...Option) (*Engine, error) {
	if comm == nil {
		comm = simtypes.SelfCommunicator()
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.installed == nil {
		o.installed = packages.DefaultSet()
	}
	if o.env == nil {
		env, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		o.env = env
	}

	e := &Engine{
		state:     StateCreated,
		Installed: o.installed,
		Env:       o.env,
	}

	var screenOpts []screen.Option
	if o.screenWriter != nil {
		screenOpts = append(screenOpts, screen.WithScreen(o.screenWriter), screen.TestMode())
	}
	e.Screen = screen.New(screenOpts...)

	e.transition(StateParsingArgs)
	cl, err := cmdline.Parse(argv)
	if err != nil {
		return nil, err
	}
	e.CommandLine = cl

	if cl.Help {
		e.printUsage()
		e.transition(StateHelpOnly)
		return e, nil
	}

	e.transition(StateConfiguringAccelerators)
	acfg, err := accel.Build(cl, e.Installed, e.Env)
	if err != nil {
		return nil, err
	}
	e.Accel = acfg
	e.resolver = style.NewResolver(acfg.Suffix)
	e.factory = style.NewAtomFactory()
	e.factory.RegisterDefaults(e.Installed)
	e.Cite = cite.NewTracker(!cl.NoCite)
	e.recordAcceleratorCitations()

	e.transition(StateConstructingSubsystems)
	if err := e.construct(comm); err != nil {
		e.release()
		return nil, err
	}
	if err := e.readyCheck(); err != nil {
		e.release()
		return nil, err
	}

	e.transition(StateReady)
	e.Screen.Line(fmt.Sprintf("%s (%s)", version.ProductName, version.Short()))
	logger.Debug("engine ready",
		"run-id", e.Universe.RunID(),
		"backend", acfg.Backend.Kind().String(),
		"packages", e.Installed.Count())
	return e, nil
}

// construct builds every mandatory subsystem in dependency order,
// registering teardown steps as it goes.
func (e *Engine) construct(comm simtypes.Communicator) error {
	if err := e.Screen.OpenFiles(e.CommandLine.ScreenPath, e.CommandLine.LogPath); err != nil {
		return simtypes.ConstructionError{Subsystem: "streams", Err: err}
	}
	e.Screen.SetEcho(e.CommandLine.Echo)
	e.built("streams", func() error { return e.Screen.Close() })

	e.Memory = subsystem.NewArena()
	e.built("memory", func() error { return e.Memory.Close() })

	reporter, err := subsystem.NewReporter(comm, e.Screen)
	if err != nil {
		return simtypes.ConstructionError{Subsystem: "reporter", Err: err}
	}
	e.Reporter = reporter
	e.built("reporter", nil)

	universe, err := subsystem.NewUniverse(comm)
	if err != nil {
		return simtypes.ConstructionError{Subsystem: "universe", Err: err}
	}
	e.Universe = universe
	e.built("universe", nil)

	e.Input = input.NewReader(input.NewVariables(e.CommandLine.Variables))
	e.Input.SetEcho(e.Screen.EchoLine)
	if e.CommandLine.InputPath != "" {
		if err := e.Input.PushFile(e.CommandLine.InputPath); err != nil {
			return simtypes.ConstructionError{Subsystem: "input", Err: err}
		}
	} else {
		if err := e.Input.Push(os.Stdin, "stdin"); err != nil {
			return simtypes.ConstructionError{Subsystem: "input", Err: err}
		}
	}
	e.built("input", func() error { return e.Input.Close() })

	atoms, err := subsystem.NewAtoms(e.factory, e.resolver)
	if err != nil {
		return simtypes.ConstructionError{Subsystem: "atom", Err: err}
	}
	e.Atom = atoms
	e.built("atom", nil)

	e.Update = subsystem.NewUpdate()
	e.built("update", nil)

	e.Neighbor = subsystem.NewNeighbor(e.Accel.Backend)
	e.built("neighbor", nil)

	commSub, err := subsystem.NewComm(comm, e.Accel.Backend)
	if err != nil {
		return simtypes.ConstructionError{Subsystem: "comm", Err: err}
	}
	e.Comm = commSub
	e.built("comm", nil)

	e.Domain = subsystem.NewDomain()
	e.built("domain", nil)

	e.Force = subsystem.NewForce(e.resolver, e.Installed)
	e.built("force", nil)

	e.Modify = subsystem.NewModify(e.resolver, e.Installed)
	e.built("modify", nil)

	e.Group = subsystem.NewGroups()
	e.built("group", nil)

	e.Output = subsystem.NewOutput()
	e.built("output", nil)

	e.Timer = subsystem.NewTimer()
	e.built("timer", nil)

	if device, ok := e.Accel.Backend.(simtypes.DeviceBackend); ok {
		runtime, err := accel.NewRuntime(device, comm)
		if err != nil {
			return simtypes.ConstructionError{Subsystem: "device runtime", Err: err}
		}
		e.Device = runtime
		e.built("device runtime", func() error { return e.Device.Close() })

		e.DeviceAtoms = accel.NewAtomMirror(e.Device)
		e.built("device atoms", nil)

		e.DeviceMemory = accel.NewMemoryPool(e.Device)
		e.built("device memory", func() error { return e.DeviceMemory.Close() })
	}

	return nil
}

// built registers a constructed subsystem and its optional release
// action.
func (e *Engine) built(name string, closeFunc func() error) {
	e.teardown = append(e.teardown, teardownStep{name: name, close: closeFunc})
	logger.Debug("subsystem constructed", "subsystem", name)
}

// readyCheck verifies every mandatory subsystem exists before the
// engine is declared ready.
func (e *Engine) readyCheck() error {
	type check struct {
		name string
		ok   bool
	}
	checks := []check{
		{"streams", e.Screen != nil},
		{"memory", e.Memory != nil},
		{"reporter", e.Reporter != nil},
		{"universe", e.Universe != nil},
		{"input", e.Input != nil},
		{"atom", e.Atom != nil},
		{"update", e.Update != nil},
		{"neighbor", e.Neighbor != nil},
		{"comm", e.Comm != nil},
		{"domain", e.Domain != nil},
		{"force", e.Force != nil},
		{"modify", e.Modify != nil},
		{"group", e.Group != nil},
		{"output", e.Output != nil},
		{"timer", e.Timer != nil},
	}
	if _, ok := e.Accel.Backend.(simtypes.DeviceBackend); ok {
		checks = append(checks,
			check{"device runtime", e.Device != nil},
			check{"device atoms", e.DeviceAtoms != nil},
			check{"device memory", e.DeviceMemory != nil})
	}
	for _, c := range checks {
		if !c.ok {
			return simtypes.ConstructionError{
				Subsystem: c.name,
				Err:       fmt.Errorf("subsystem missing after construction"),
			}
		}
	}
	return nil
}

// Close releases every subsystem in reverse construction order and
// prints the wall-clock summary. Closing twice is a no-op.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.state == StateHelpOnly {
		e.transition(StateDestroyed)
		return nil
	}

	e.flushCitations()
	if e.Timer != nil {
		e.Screen.Line("Total wall time: " + e.Timer.Wall())
	}
	return e.release()
}

// release runs the teardown steps newest first.
func (e *Engine) release() error {
	e.transition(StateFinalizing)
	var first error
	for i := len(e.teardown) - 1; i >= 0; i-- {
		step := e.teardown[i]
		if step.close != nil {
			if err := step.close(); err != nil && first == nil {
				first = err
			}
		}
		logger.Debug("subsystem released", "subsystem", step.name)
	}
	e.teardown = nil
	e.transition(StateDestroyed)
	return first
}

// flushCitations writes the citation reminder collected during the
// run.
func (e *Engine) flushCitations() {
	if e.Cite == nil || !e.Cite.Enabled() {
		return
	}
	for _, line := range e.Cite.Lines() {
		e.Screen.Line(line)
	}
}

// recordAcceleratorCitations registers citation notes for every
// accelerator package the command line activated.
func (e *Engine) recordAcceleratorCitations() {
	for _, token := range e.Accel.Suffix.Tokens() {
		if pkg, ok := e.Installed.BySuffix(token); ok {
			e.Cite.Add(string(pkg.Name), pkg.Citation)
		}
	}
	for name := range e.Accel.PerPackage {
		if pkg, ok := e.Installed.Lookup(name); ok {
			e.Cite.Add(string(pkg.Name), pkg.Citation)
		}
	}
	if _, ok := e.Accel.Backend.(simtypes.DeviceBackend); ok {
		if pkg, ok := e.Installed.Lookup(packages.Kokkos); ok {
			e.Cite.Add(string(pkg.Name), pkg.Citation)
		}
	}
}

// printUsage writes the two-line help banner.
func (e *Engine) printUsage() {
	name := filepath.Base(e.CommandLine.Executable)
	e.Screen.Line(fmt.Sprintf("%s - %s - v%s",
		version.ProductName, version.ProductLong, version.GetVersion()))
	e.Screen.Line(fmt.Sprintf("usage: %s [-h] [-i <file>] [-l <file>|none] [-sc <file>|none]"+
		" [-e none|screen|log|both] [-v <name> <value>...] [-nc]"+
		" [-sf <style>|hybrid <s1> <s2>] [-k on|off [t <N>] [g <N>]]"+
		" [-pk <package> <args>...]", name))
}

// State returns the current life-cycle state.
func (e *Engine) State() State {
	return e.state
}

// MatchStyle reports which package registers a style keyword. The
// false return means the keyword belongs to the core.
func (e *Engine) MatchStyle(category simtypes.StyleCategory, keyword string) (simtypes.PackageName, bool) {
	return style.Lookup(category, keyword)
}

// ResolveStyle returns the suffix-expanded candidate list for a base
// keyword.
func (e *Engine) ResolveStyle(category simtypes.StyleCategory, base string) []string {
	if e.resolver == nil {
		return []string{base}
	}
	return e.resolver.Resolve(category, base)
}

func (e *Engine) transition(next State) {
	logger.Debug("engine state transition", "from", e.state.String(), "to", next.String())
	e.state = next
}
