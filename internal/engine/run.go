package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"moldyn/internal/input"
	"moldyn/internal/logger"
	"moldyn/internal/style"
	"moldyn/internal/subsystem"
	"moldyn/pkg/simtypes"
)

// errQuit stops deck processing cleanly.
var errQuit = errors.New("quit")

// Run processes the input deck until it is exhausted, a quit command,
// or the first error. Errors carry the deck position.
func (e *Engine) Run() error {
	if e.state != StateReady {
		return fmt.Errorf("engine is %s, cannot process a deck", e.state)
	}
	for {
		cmd, err := e.Input.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := e.execute(cmd); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return fmt.Errorf("%s: %w", e.Input.Position(), err)
		}
	}
}

// execute dispatches one deck command to its subsystem.
func (e *Engine) execute(cmd input.Command) error {
	switch cmd.Name {
	case "variable":
		if len(cmd.Args) < 2 {
			return fmt.Errorf("variable command needs a name and a value")
		}
		return e.Input.Variables().Set(cmd.Args[0], strings.Join(cmd.Args[1:], " "))

	case "print":
		e.Screen.Line(strings.Join(cmd.Args, " "))
		return nil

	case "echo":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("echo command needs one mode")
		}
		mode, ok := simtypes.ParseEchoMode(cmd.Args[0])
		if !ok {
			return fmt.Errorf("unknown echo mode %s", cmd.Args[0])
		}
		e.Screen.SetEcho(mode)
		return nil

	case "log":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("log command needs one path")
		}
		return e.Screen.SwitchLog(cmd.Args[0])

	case "include":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("include command needs one path")
		}
		return e.Input.PushFile(cmd.Args[0])

	case "clear":
		return e.clear()

	case "quit":
		return errQuit

	case "units":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("units command needs one style")
		}
		return e.Update.SetUnits(cmd.Args[0])

	case "atom_style":
		if len(cmd.Args) < 1 {
			return fmt.Errorf("atom_style command needs a style")
		}
		if err := e.Atom.SetStyle(e.resolver, cmd.Args[0]); err != nil {
			return err
		}
		e.recordStyleCitation(simtypes.CategoryAtom, e.Atom.StyleKeyword())
		return nil

	case "pair_style":
		if len(cmd.Args) < 1 {
			return fmt.Errorf("pair_style command needs a style")
		}
		resolved, err := e.Force.SetPair(cmd.Args[0])
		if err != nil {
			return err
		}
		e.recordStyleCitation(simtypes.CategoryPair, resolved)
		return nil

	case "bond_style":
		if len(cmd.Args) < 1 {
			return fmt.Errorf("bond_style command needs a style")
		}
		resolved, err := e.Force.SetBond(cmd.Args[0])
		if err != nil {
			return err
		}
		e.recordStyleCitation(simtypes.CategoryBond, resolved)
		return nil

	case "fix":
		if len(cmd.Args) < 3 {
			return fmt.Errorf("fix command needs an ID, a group, and a style")
		}
		if !e.Group.Has(cmd.Args[1]) {
			return fmt.Errorf("fix group %s does not exist", cmd.Args[1])
		}
		fix, err := e.Modify.AddFix(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3:]...)
		if err != nil {
			return err
		}
		e.recordStyleCitation(simtypes.CategoryFix, fix.Style)
		return nil

	case "unfix":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("unfix command needs a fix ID")
		}
		return e.Modify.RemoveFix(cmd.Args[0])

	case "group":
		if len(cmd.Args) < 2 {
			return fmt.Errorf("group command needs a name and a selection")
		}
		return e.Group.Define(cmd.Args[0], cmd.Args[1:]...)

	case "region":
		return e.defineRegion(cmd.Args)

	case "create_box":
		if len(cmd.Args) != 2 {
			return fmt.Errorf("create_box command needs a type count and a region")
		}
		ntypes, err := strconv.Atoi(cmd.Args[0])
		if err != nil || ntypes < 1 {
			return fmt.Errorf("create_box type count must be a positive integer, got %s", cmd.Args[0])
		}
		return e.Domain.SetBoundsFromRegion(cmd.Args[1])

	case "boundary":
		return e.setBoundary(cmd.Args)

	case "timestep":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("timestep command needs one value")
		}
		dt, err := strconv.ParseFloat(cmd.Args[0], 64)
		if err != nil {
			return fmt.Errorf("timestep value %s is not a number", cmd.Args[0])
		}
		return e.Update.SetDt(dt)

	case "thermo":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("thermo command needs one interval")
		}
		every, err := strconv.Atoi(cmd.Args[0])
		if err != nil {
			return fmt.Errorf("thermo interval %s is not an integer", cmd.Args[0])
		}
		return e.Output.SetThermoEvery(every)

	case "thermo_style":
		if len(cmd.Args) < 1 {
			return fmt.Errorf("thermo_style command needs a style")
		}
		switch cmd.Args[0] {
		case "one":
			return e.Output.SetKeywords("step", "temp", "epair", "emol", "etotal", "press")
		case "custom":
			if len(cmd.Args) < 2 {
				return fmt.Errorf("thermo_style custom needs at least one keyword")
			}
			return e.Output.SetKeywords(cmd.Args[1:]...)
		default:
			return fmt.Errorf("unknown thermo style %s", cmd.Args[0])
		}

	case "run":
		return e.runSteps(cmd.Args)

	default:
		return fmt.Errorf("unknown command %s", cmd.Name)
	}
}

// defineRegion handles: region <id> block <xlo> <xhi> <ylo> <yhi> <zlo> <zhi>
func (e *Engine) defineRegion(args []string) error {
	if len(args) != 8 {
		return fmt.Errorf("region command needs an ID, the block style, and six bounds")
	}
	if args[1] != "block" {
		return fmt.Errorf("unknown region style %s", args[1])
	}
	var bounds [6]float64
	for i, token := range args[2:] {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return fmt.Errorf("region bound %s is not a number", token)
		}
		bounds[i] = value
	}
	lo := [3]float64{bounds[0], bounds[2], bounds[4]}
	hi := [3]float64{bounds[1], bounds[3], bounds[5]}
	return e.Domain.AddRegion(args[0], lo, hi)
}

// setBoundary handles: boundary <x> <y> <z> with p (periodic) or
// f (fixed) per axis.
func (e *Engine) setBoundary(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("boundary command needs three axis settings")
	}
	periodic := [3]bool{}
	for i, token := range args {
		switch token {
		case "p":
			periodic[i] = true
		case "f":
			periodic[i] = false
		default:
			return fmt.Errorf("unknown boundary setting %s", token)
		}
	}
	e.Domain.SetPeriodic(periodic[0], periodic[1], periodic[2])
	return nil
}

// runSteps handles: run <n>
func (e *Engine) runSteps(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("run command needs a step count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("run step count must be a non-negative integer, got %s", args[0])
	}
	if !e.Domain.Defined() {
		return fmt.Errorf("simulation box must be defined before run")
	}
	start := time.Now()
	e.Update.Advance(int64(n))
	e.Timer.Stamp("run")
	e.Screen.Linef("Loop time of %.6f on %d procs for %d steps with %d atoms",
		time.Since(start).Seconds(), e.Comm.Size(), n, e.Atom.Count())
	return nil
}

// clear resets the simulation-state subsystems to their constructed
// defaults. Streams, input, and accelerator contexts survive.
func (e *Engine) clear() error {
	atoms, err := subsystem.NewAtoms(e.factory, e.resolver)
	if err != nil {
		return err
	}
	e.Atom = atoms
	e.Update = subsystem.NewUpdate()
	e.Neighbor = subsystem.NewNeighbor(e.Accel.Backend)
	e.Domain = subsystem.NewDomain()
	e.Force = subsystem.NewForce(e.resolver, e.Installed)
	e.Modify = subsystem.NewModify(e.resolver, e.Installed)
	e.Group = subsystem.NewGroups()
	e.Output = subsystem.NewOutput()
	logger.Debug("simulation state cleared")
	return e.Memory.Close()
}

// recordStyleCitation registers the citation of the package owning a
// resolved style keyword, if any.
func (e *Engine) recordStyleCitation(category simtypes.StyleCategory, keyword string) {
	owner, ok := style.Lookup(category, keyword)
	if !ok {
		return
	}
	if pkg, ok := e.Installed.Lookup(owner); ok && pkg.Citation != "" {
		e.Cite.Add(string(pkg.Name), pkg.Citation)
	}
}
