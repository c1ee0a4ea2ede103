package engine

import (
	"gopkg.in/yaml.v3"

	"moldyn/internal/version"
	"moldyn/pkg/simtypes"
)

// Info summarizes an engine's configuration for the info command and
// diagnostics. Fields for subsystems that were never constructed are
// omitted.
type Info struct {
	Version     *version.Info `yaml:"version"`
	State       string        `yaml:"state"`
	Executable  string        `yaml:"executable,omitempty"`
	RunID       string        `yaml:"run_id,omitempty"`
	Ranks       int           `yaml:"ranks,omitempty"`
	Backend     string        `yaml:"backend,omitempty"`
	Threads     int           `yaml:"threads,omitempty"`
	Devices     int           `yaml:"devices,omitempty"`
	Suffixes    []string      `yaml:"suffixes,omitempty"`
	Invocations int           `yaml:"package_invocations"`
	Installed   []string      `yaml:"installed_packages"`
	UnitStyle   string        `yaml:"units,omitempty"`
	AtomStyle   string        `yaml:"atom_style,omitempty"`
	PairStyle   string        `yaml:"pair_style,omitempty"`
	BondStyle   string        `yaml:"bond_style,omitempty"`
	InputPath   string        `yaml:"input,omitempty"`
	LogPath     string        `yaml:"log,omitempty"`
	Echo        string        `yaml:"echo,omitempty"`
	NoCite      bool          `yaml:"nocite,omitempty"`
}

// Info collects the configuration summary.
func (e *Engine) Info() (*Info, error) {
	vinfo, err := version.GetInfo()
	if err != nil {
		return nil, err
	}
	info := &Info{
		Version:   vinfo,
		State:     e.state.String(),
		Installed: installedNames(e),
	}
	if e.CommandLine != nil {
		info.Executable = e.CommandLine.Executable
		info.InputPath = e.CommandLine.InputPath
		info.LogPath = e.CommandLine.LogPath
		info.Echo = e.CommandLine.Echo.String()
		info.NoCite = e.CommandLine.NoCite
	}
	if e.Accel != nil {
		info.Backend = e.Accel.Backend.Kind().String()
		info.Threads = e.Accel.Backend.ThreadCount()
		info.Suffixes = e.Accel.Suffix.Tokens()
		info.Invocations = e.Accel.Invocations
		if device, ok := e.Accel.Backend.(simtypes.DeviceBackend); ok {
			info.Devices = device.Devices
		}
	}
	if e.Universe != nil {
		info.RunID = e.Universe.RunID()
		info.Ranks = e.Universe.Size()
	}
	if e.Update != nil {
		info.UnitStyle = e.Update.UnitStyle()
	}
	if e.Atom != nil {
		info.AtomStyle = e.Atom.StyleKeyword()
	}
	if e.Force != nil {
		info.PairStyle = e.Force.PairStyle()
		info.BondStyle = e.Force.BondStyle()
	}
	return info, nil
}

// InfoYAML renders the configuration summary as YAML.
func (e *Engine) InfoYAML() (string, error) {
	info, err := e.Info()
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(info)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func installedNames(e *Engine) []string {
	if e.Installed == nil {
		return nil
	}
	names := e.Installed.Names()
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = string(name)
	}
	return out
}
