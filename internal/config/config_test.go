package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromMapAppliesDefaults(t *testing.T) {
	env := NewFromMap(nil)

	assert.Equal(t, "info", env.Get("MOLDYN_LOG_LEVEL"))
	assert.Equal(t, "auto", env.Get("MOLDYN_COLOR"))
}

func TestNewFromMapOverridesDefaults(t *testing.T) {
	env := NewFromMap(map[string]string{
		"MOLDYN_LOG_LEVEL": "debug",
		"OMP_NUM_THREADS":  "4",
	})

	assert.Equal(t, "debug", env.Get("MOLDYN_LOG_LEVEL"))
	assert.Equal(t, "auto", env.Get("MOLDYN_COLOR"))
	assert.Equal(t, "4", env.Get("OMP_NUM_THREADS"))
}

func TestLookup(t *testing.T) {
	env := NewFromMap(map[string]string{"MOLDYN_EXTRA": "yes"})

	value, ok := env.Lookup("MOLDYN_EXTRA")
	require.True(t, ok)
	assert.Equal(t, "yes", value)

	_, ok = env.Lookup("MOLDYN_MISSING")
	assert.False(t, ok)
	assert.Empty(t, env.Get("MOLDYN_MISSING"))
}

func TestKeysSorted(t *testing.T) {
	env := New()
	env.Set("B", "2")
	env.Set("A", "1")
	env.Set("C", "3")

	assert.Equal(t, []string{"A", "B", "C"}, env.Keys())
}

func TestOMPThreads(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		expected int
	}{
		{name: "unset", set: false, expected: 0},
		{name: "positive", value: "8", set: true, expected: 8},
		{name: "whitespace", value: " 2 ", set: true, expected: 2},
		{name: "zero", value: "0", set: true, expected: 0},
		{name: "negative", value: "-3", set: true, expected: 0},
		{name: "non-numeric", value: "lots", set: true, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := New()
			if tt.set {
				env.Set("OMP_NUM_THREADS", tt.value)
			}
			assert.Equal(t, tt.expected, env.OMPThreads())
		})
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "MOLDYN_LOG_LEVEL=warn\nMOLDYN_COLOR=never\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	env := New()
	require.NoError(t, env.loadDotEnvFile(envPath))

	assert.Equal(t, "warn", env.Get("MOLDYN_LOG_LEVEL"))
	assert.Equal(t, "never", env.Get("MOLDYN_COLOR"))
}

func TestLoadDotEnvFileMissing(t *testing.T) {
	env := New()
	err := env.loadDotEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestUserConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	dir, err := UserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-test", "moldyn"), dir)
}
