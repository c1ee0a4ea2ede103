package subsystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moldyn/internal/packages"
	"moldyn/internal/style"
	"moldyn/pkg/simtypes"
)

func TestForceCoreStylesAlwaysAvailable(t *testing.T) {
	resolver := style.NewResolver(simtypes.NewSuffixState())
	force := NewForce(resolver, packages.NewSet())

	for _, keyword := range []string{"lj/cut", "coul/cut", "morse", "yukawa", "zero", "none"} {
		assert.True(t, force.Has(simtypes.CategoryPair, keyword), "pair style %s should ship in every build", keyword)
	}
	assert.True(t, force.Has(simtypes.CategoryBond, "zero"))
	assert.True(t, force.Has(simtypes.CategoryBond, "none"))
}

func TestForcePackageStylesFollowInstalledSet(t *testing.T) {
	resolver := style.NewResolver(simtypes.NewSuffixState())

	full := NewForce(resolver, packages.DefaultSet())
	assert.True(t, full.Has(simtypes.CategoryPair, "eam"))
	assert.True(t, full.Has(simtypes.CategoryPair, "lj/cut/omp"))
	assert.True(t, full.Has(simtypes.CategoryBond, "harmonic"))

	stripped := NewForce(resolver, packages.NewSet(packages.Molecule))
	assert.False(t, stripped.Has(simtypes.CategoryPair, "eam"))
	assert.False(t, stripped.Has(simtypes.CategoryPair, "lj/cut/omp"))
	assert.True(t, stripped.Has(simtypes.CategoryBond, "harmonic"))
}

func TestForceSetPairPlain(t *testing.T) {
	resolver := style.NewResolver(simtypes.NewSuffixState())
	force := NewForce(resolver, packages.DefaultSet())

	resolved, err := force.SetPair("lj/cut")
	require.NoError(t, err)
	assert.Equal(t, "lj/cut", resolved)
	assert.Equal(t, "lj/cut", force.PairStyle())
}

func TestForceSetPairPrefersSuffixedVariant(t *testing.T) {
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("omp", ""))
	resolver := style.NewResolver(state)
	force := NewForce(resolver, packages.DefaultSet())

	resolved, err := force.SetPair("lj/cut")
	require.NoError(t, err)
	assert.Equal(t, "lj/cut/omp", resolved)
}

func TestForceSetPairFallsBackToBase(t *testing.T) {
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("omp", ""))
	resolver := style.NewResolver(state)
	force := NewForce(resolver, packages.DefaultSet())

	// morse has no accelerated variant, so the base style wins.
	resolved, err := force.SetPair("morse")
	require.NoError(t, err)
	assert.Equal(t, "morse", resolved)
}

func TestForceSetPairSuffixedVariantNeedsItsPackage(t *testing.T) {
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("omp", ""))
	resolver := style.NewResolver(state)

	// Without USER-OMP installed the suffixed candidate is skipped and
	// the core style is chosen instead.
	force := NewForce(resolver, packages.NewSet(packages.Molecule))
	resolved, err := force.SetPair("lj/cut")
	require.NoError(t, err)
	assert.Equal(t, "lj/cut", resolved)
}

func TestForceSetPairUnknownStyle(t *testing.T) {
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("kk", "omp"))
	resolver := style.NewResolver(state)
	force := NewForce(resolver, packages.DefaultSet())

	_, err := force.SetPair("granular")
	require.Error(t, err)

	var styleErr simtypes.UnknownStyleError
	require.ErrorAs(t, err, &styleErr)
	assert.Equal(t, simtypes.CategoryPair, styleErr.Category)
	assert.Equal(t, "granular", styleErr.Keyword)
	assert.Equal(t, []string{"granular/kk", "granular/omp", "granular"}, styleErr.Tried)
	assert.Equal(t, "none", force.PairStyle(), "failed selection should not change the active style")
}

func TestForceSetBond(t *testing.T) {
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("kk", ""))
	resolver := style.NewResolver(state)
	force := NewForce(resolver, packages.DefaultSet())

	resolved, err := force.SetBond("harmonic")
	require.NoError(t, err)
	assert.Equal(t, "harmonic/kk", resolved)
	assert.Equal(t, "harmonic/kk", force.BondStyle())

	_, err = force.SetBond("quartic")
	require.Error(t, err)
}

func TestForceAvailableSorted(t *testing.T) {
	resolver := style.NewResolver(simtypes.NewSuffixState())
	force := NewForce(resolver, packages.NewSet(packages.ManyBody))

	available := force.Available(simtypes.CategoryPair)
	assert.Contains(t, available, "sw")
	assert.Contains(t, available, "tersoff")
	assert.NotContains(t, available, "lj/cut/omp")
	assert.IsIncreasing(t, available)
}
