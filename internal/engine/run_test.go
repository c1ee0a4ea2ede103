package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moldyn/internal/config"
	"moldyn/pkg/simtypes"
)

// deckEngine bootstraps an engine reading a temporary deck file.
func deckEngine(t *testing.T, deck string, extra ...string) (*Engine, *bytes.Buffer) {
	t.Helper()
	deckPath := filepath.Join(t.TempDir(), "in.test")
	require.NoError(t, os.WriteFile(deckPath, []byte(deck), 0o644))

	var buf bytes.Buffer
	argv := append([]string{"moldyn", "-l", "none", "-i", deckPath}, extra...)
	e, err := New(argv, simtypes.SelfCommunicator(),
		WithScreenWriter(&buf), WithEnvironment(config.NewFromMap(nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e, &buf
}

func TestRunMeltDeck(t *testing.T) {
	deck := `# 3d Lennard-Jones melt
units lj
atom_style atomic
boundary p p p
region box block 0 10 0 10 0 10
create_box 1 box
pair_style lj/cut
group mobile type 1
fix 1 mobile nve
timestep 0.005
thermo 100
thermo_style custom step temp pe
run 100
`
	e, buf := deckEngine(t, deck)
	require.NoError(t, e.Run())

	assert.Equal(t, "lj", e.Update.UnitStyle())
	assert.Equal(t, "atomic", e.Atom.StyleKeyword())
	assert.True(t, e.Domain.Defined())
	assert.Equal(t, 1000.0, e.Domain.Volume())
	assert.Equal(t, "lj/cut", e.Force.PairStyle())
	assert.True(t, e.Group.Has("mobile"))

	fixes := e.Modify.Fixes()
	require.Len(t, fixes, 1)
	assert.Equal(t, "nve", fixes[0].Style)
	assert.Equal(t, "mobile", fixes[0].Group)

	assert.Equal(t, 0.005, e.Update.Dt())
	assert.Equal(t, 100, e.Output.ThermoEvery())
	assert.Equal(t, []string{"step", "temp", "pe"}, e.Output.Keywords())
	assert.Equal(t, int64(100), e.Update.Ntimestep())
	assert.Contains(t, buf.String(), "Loop time of")
}

func TestRunSuffixedDeckSelectsVariants(t *testing.T) {
	deck := `units lj
atom_style full
pair_style lj/cut
bond_style harmonic
fix 1 all nve
`
	e, _ := deckEngine(t, deck, "-sf", "kk", "-k", "on")
	require.NoError(t, e.Run())

	assert.Equal(t, "full/kk", e.Atom.StyleKeyword())
	assert.Equal(t, "lj/cut/kk", e.Force.PairStyle())
	assert.Equal(t, "harmonic/kk", e.Force.BondStyle())

	fixes := e.Modify.Fixes()
	require.Len(t, fixes, 1)
	assert.Equal(t, "nve/kk", fixes[0].Style)
}

func TestRunVariablesAndPrint(t *testing.T) {
	deck := `variable x 10
variable msg "box edge is ${x}"
print "edge ${x}"
print ${msg}
`
	e, buf := deckEngine(t, deck)
	require.NoError(t, e.Run())

	assert.Contains(t, buf.String(), "edge 10")
	assert.Contains(t, buf.String(), "box edge is 10")

	value, ok := e.Input.Variables().Get("msg")
	require.True(t, ok)
	assert.Equal(t, "box edge is 10", value)
}

func TestRunCommandLineVariablesSeedDeck(t *testing.T) {
	deck := "print \"temperature is ${t}\"\n"
	e, buf := deckEngine(t, deck, "-v", "t", "300")
	require.NoError(t, e.Run())
	assert.Contains(t, buf.String(), "temperature is 300")
}

func TestRunQuitStopsProcessing(t *testing.T) {
	deck := `print before
quit
print after
`
	e, buf := deckEngine(t, deck)
	require.NoError(t, e.Run())

	assert.Contains(t, buf.String(), "before")
	assert.NotContains(t, buf.String(), "after")
}

func TestRunIncludeDeck(t *testing.T) {
	dir := t.TempDir()
	innerPath := filepath.Join(dir, "in.settings")
	require.NoError(t, os.WriteFile(innerPath, []byte("thermo 50\n"), 0o644))

	deck := "include " + innerPath + "\ntimestep 0.001\n"
	e, _ := deckEngine(t, deck)
	require.NoError(t, e.Run())

	assert.Equal(t, 50, e.Output.ThermoEvery())
	assert.Equal(t, 0.001, e.Update.Dt(), "outer deck resumes after the include")
}

func TestRunLogSwitch(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.switched")
	deck := "log " + logPath + "\nprint switched-output\n"

	e, _ := deckEngine(t, deck)
	require.NoError(t, e.Run())
	require.NoError(t, e.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "switched-output")
}

func TestRunEchoCommand(t *testing.T) {
	deck := "echo screen\nprint ok\n"
	e, _ := deckEngine(t, deck)
	require.NoError(t, e.Run())
	assert.Equal(t, simtypes.EchoScreen, e.Screen.Echo())
}

func TestRunClearResetsSimulation(t *testing.T) {
	deck := `units metal
region box block 0 5 0 5 0 5
create_box 1 box
pair_style lj/cut
fix 1 all nve
group mobile type 1
clear
`
	e, _ := deckEngine(t, deck)
	require.NoError(t, e.Run())

	assert.Equal(t, "none", e.Force.PairStyle())
	assert.False(t, e.Domain.Defined())
	assert.Empty(t, e.Modify.Fixes())
	assert.Equal(t, 1, e.Group.Count(), "only the all group survives")
	assert.Equal(t, "lj", e.Update.UnitStyle(), "units reset to the default")
	assert.Equal(t, "atomic", e.Atom.StyleKeyword())
}

func TestRunErrorsCarryDeckPosition(t *testing.T) {
	deck := `units lj
timestep 0.005
frobnicate 1
`
	e, _ := deckEngine(t, deck)
	err := e.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "unknown command frobnicate")
}

func TestRunFixGroupMustExist(t *testing.T) {
	e, _ := deckEngine(t, "fix 1 ghost nve\n")
	err := e.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fix group ghost does not exist")
}

func TestRunRequiresBox(t *testing.T) {
	e, _ := deckEngine(t, "run 10\n")
	err := e.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation box must be defined")
}

func TestRunUnknownStyleStops(t *testing.T) {
	e, _ := deckEngine(t, "pair_style granular\n")
	err := e.Run()
	require.Error(t, err)

	var styleErr simtypes.UnknownStyleError
	require.ErrorAs(t, err, &styleErr)
	assert.Equal(t, "granular", styleErr.Keyword)
}

func TestRunCommandValidation(t *testing.T) {
	tests := []struct {
		name    string
		deck    string
		wantErr string
	}{
		{"variable needs value", "variable x\n", "needs a name and a value"},
		{"echo needs known mode", "echo loud\n", "unknown echo mode loud"},
		{"units needs known style", "units imperial\n", "unknown unit style imperial"},
		{"region needs block style", "region box sphere 0 1 0 1 0 1\n", "unknown region style sphere"},
		{"region needs numbers", "region box block 0 x 0 1 0 1\n", "is not a number"},
		{"create_box needs region", "region box block 0 1 0 1 0 1\ncreate_box 1 nowhere\n", "region nowhere does not exist"},
		{"create_box needs positive types", "region box block 0 1 0 1 0 1\ncreate_box 0 box\n", "positive integer"},
		{"boundary needs p or f", "boundary p p x\n", "unknown boundary setting x"},
		{"timestep needs number", "timestep fast\n", "not a number"},
		{"timestep needs positive", "timestep -0.5\n", "must be positive"},
		{"thermo needs integer", "thermo often\n", "not an integer"},
		{"thermo_style needs keywords", "thermo_style custom\n", "at least one keyword"},
		{"thermo_style needs known style", "thermo_style fancy\n", "unknown thermo style fancy"},
		{"run needs count", "run\n", "needs a step count"},
		{"run needs non-negative", "run -5\n", "non-negative integer"},
		{"unfix needs existing id", "unfix 9\n", "does not exist"},
		{"include needs readable file", "include /nonexistent/deck.in\n", "cannot open deck"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := deckEngine(t, tt.deck)
			err := e.Run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunRejectsNonReadyEngine(t *testing.T) {
	var buf bytes.Buffer
	e, err := New([]string{"moldyn", "-h"}, simtypes.SelfCommunicator(),
		WithScreenWriter(&buf), WithEnvironment(config.NewFromMap(nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })

	runErr := e.Run()
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "help-only")
}
