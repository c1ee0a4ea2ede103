package style

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moldyn/internal/packages"
	"moldyn/pkg/simtypes"
)

func fullBuildFactory() *AtomFactory {
	f := NewAtomFactory()
	f.RegisterDefaults(packages.DefaultSet())
	return f
}

func TestRegisterDefaultsFullBuild(t *testing.T) {
	f := fullBuildFactory()

	// Core styles.
	assert.True(t, f.Has("atomic"))
	assert.True(t, f.Has("charge"))
	assert.True(t, f.Has("sphere"))

	// Package styles.
	assert.True(t, f.Has("full"))
	assert.True(t, f.Has("dipole"))
	assert.True(t, f.Has("meso"))

	// Device mirrors.
	assert.True(t, f.Has("full/kk"))
	assert.True(t, f.Has("atomic/kk"))
	assert.True(t, f.Has("spin/kk"))
}

func TestRegisterDefaultsStrippedBuild(t *testing.T) {
	f := NewAtomFactory()
	f.RegisterDefaults(packages.NewSet(packages.Molecule))

	assert.True(t, f.Has("atomic"))
	assert.True(t, f.Has("full"))
	assert.False(t, f.Has("full/kk"), "device mirror needs KOKKOS")
	assert.False(t, f.Has("dipole"))
	assert.False(t, f.Has("meso"))
}

func TestRegisterDefaultsKokkosWithoutMolecule(t *testing.T) {
	f := NewAtomFactory()
	f.RegisterDefaults(packages.NewSet(packages.Kokkos))

	assert.True(t, f.Has("atomic/kk"))
	assert.True(t, f.Has("charge/kk"))
	assert.False(t, f.Has("full"), "molecular styles need MOLECULE")
	assert.False(t, f.Has("full/kk"), "molecular mirror needs MOLECULE too")
}

func TestCreateWithoutSuffix(t *testing.T) {
	f := fullBuildFactory()
	resolver := NewResolver(simtypes.NewSuffixState())

	atom, keyword, err := f.Create(resolver, "full")
	require.NoError(t, err)
	assert.Equal(t, "full", keyword)
	assert.Equal(t, "full", atom.Keyword())
	assert.Contains(t, atom.Fields(), "q")
	assert.Contains(t, atom.Fields(), "dihedrals")
}

func TestCreatePrefersSuffixedVariant(t *testing.T) {
	f := fullBuildFactory()
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("kk", ""))

	atom, keyword, err := f.Create(NewResolver(state), "full")
	require.NoError(t, err)
	assert.Equal(t, "full/kk", keyword)
	assert.Equal(t, "full/kk", atom.Keyword())
}

func TestCreateFallsBackToBase(t *testing.T) {
	f := fullBuildFactory()
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("omp", ""))

	// No omp atom variants exist, so the base style wins.
	_, keyword, err := f.Create(NewResolver(state), "full")
	require.NoError(t, err)
	assert.Equal(t, "full", keyword)
}

func TestCreateSecondaryBeforeBase(t *testing.T) {
	f := fullBuildFactory()
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("omp", "kk"))

	// Primary omp has no variant, secondary kk does.
	_, keyword, err := f.Create(NewResolver(state), "full")
	require.NoError(t, err)
	assert.Equal(t, "full/kk", keyword)
}

func TestCreateAlreadySuffixed(t *testing.T) {
	f := fullBuildFactory()
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("omp", ""))

	_, keyword, err := f.Create(NewResolver(state), "full/kk")
	require.NoError(t, err)
	assert.Equal(t, "full/kk", keyword)
}

func TestCreateUnknownStyle(t *testing.T) {
	f := fullBuildFactory()
	state := simtypes.NewSuffixState()
	require.NoError(t, state.Set("kk", "omp"))

	atom, _, err := f.Create(NewResolver(state), "granular")
	require.Error(t, err)
	assert.Nil(t, atom)

	var unknown simtypes.UnknownStyleError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, simtypes.CategoryAtom, unknown.Category)
	assert.Equal(t, "granular", unknown.Keyword)
	assert.Equal(t, []string{"granular/kk", "granular/omp", "granular"}, unknown.Tried)
}

func TestCreateMissingPackageStyle(t *testing.T) {
	f := NewAtomFactory()
	f.RegisterDefaults(packages.NewSet())

	_, _, err := f.Create(NewResolver(simtypes.NewSuffixState()), "full")
	var unknown simtypes.UnknownStyleError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"full"}, unknown.Tried)
}

func TestKeywordsSortedAndComplete(t *testing.T) {
	f := NewAtomFactory()
	f.RegisterDefaults(packages.NewSet(packages.Molecule, packages.Dipole))

	keywords := f.Keywords()
	for i := 1; i < len(keywords); i++ {
		assert.Less(t, keywords[i-1], keywords[i])
	}
	assert.Contains(t, keywords, "dipole")
	assert.Contains(t, keywords, "molecular")
	assert.NotContains(t, keywords, "spin")
}
