// Package config loads the engine's ambient configuration from layered
// sources: built-in defaults, then .env in the user config directory,
// then .env in the working directory, then the process environment.
// Later layers win. Only MOLDYN_-prefixed keys and the OpenMP thread
// count are read from the process environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// envPrefixes lists the process environment prefixes the engine honors.
var envPrefixes = []string{"MOLDYN_", "OMP_"}

// defaults seed the lowest-priority layer.
var defaults = map[string]string{
	"MOLDYN_LOG_LEVEL": "info",
	"MOLDYN_COLOR":     "auto",
}

// Environment is the resolved key-value configuration handed to
// bootstrap. It is populated once during Load and treated as read-only
// afterward; Set exists for tests and for the layering itself.
type Environment struct {
	mu     sync.RWMutex
	values map[string]string
}

// New returns an empty environment.
func New() *Environment {
	return &Environment{values: make(map[string]string)}
}

// NewFromMap returns an environment containing only the given values on
// top of the built-in defaults. Tests use this to model a process
// environment without touching the real one.
func NewFromMap(values map[string]string) *Environment {
	env := New()
	for key, value := range defaults {
		env.Set(key, value)
	}
	for key, value := range values {
		env.Set(key, value)
	}
	return env
}

// Load builds the full layered environment. Missing .env files are
// skipped; a file that exists but cannot be parsed is an error.
func Load() (*Environment, error) {
	env := New()

	for key, value := range defaults {
		env.Set(key, value)
	}

	if err := env.loadConfigDotEnv(); err != nil {
		return nil, err
	}
	if err := env.loadLocalDotEnv(); err != nil {
		return nil, err
	}
	env.loadProcessEnv()

	return env, nil
}

// Get returns the value for key, or the empty string.
func (e *Environment) Get(key string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.values[key]
}

// Lookup returns the value for key and whether it is present.
func (e *Environment) Lookup(key string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	value, ok := e.values[key]
	return value, ok
}

// Set stores a key-value pair, replacing any earlier layer's value.
func (e *Environment) Set(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[key] = value
}

// Keys returns all present keys in sorted order.
func (e *Environment) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.values))
	for key := range e.values {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// OMPThreads returns the thread count requested via OMP_NUM_THREADS, or
// zero when the variable is unset, non-numeric, or not positive. Zero
// tells the accelerator layer to fall back to a single thread.
func (e *Environment) OMPThreads() int {
	value, ok := e.Lookup("OMP_NUM_THREADS")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// UserConfigDir returns the engine's per-user configuration directory,
// honoring XDG_CONFIG_HOME and falling back to ~/.config.
func UserConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "moldyn"), nil
}

// loadConfigDotEnv loads .env from the user's config directory
// (~/.config/moldyn/.env).
func (e *Environment) loadConfigDotEnv() error {
	configDir, err := UserConfigDir()
	if err != nil {
		// Config directory access failure is not fatal
		return nil
	}

	envPath := filepath.Join(configDir, ".env")
	if !fileExists(envPath) {
		// Missing config .env file is not an error
		return nil
	}

	return e.loadDotEnvFile(envPath)
}

// loadLocalDotEnv loads .env from the current working directory.
func (e *Environment) loadLocalDotEnv() error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	envPath := filepath.Join(workDir, ".env")
	if !fileExists(envPath) {
		// Missing local .env file is not an error
		return nil
	}

	return e.loadDotEnvFile(envPath)
}

// loadProcessEnv copies matching process environment variables into the
// highest-priority layer.
func (e *Environment) loadProcessEnv() {
	for _, entry := range os.Environ() {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key, value := parts[0], parts[1]
		for _, prefix := range envPrefixes {
			if strings.HasPrefix(key, prefix) {
				e.Set(key, value)
				break
			}
		}
	}
}

func (e *Environment) loadDotEnvFile(envPath string) error {
	data, err := os.ReadFile(envPath)
	if err != nil {
		return fmt.Errorf("failed to read .env file %s: %w", envPath, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", envPath, err)
	}

	for key, value := range envMap {
		e.Set(key, value)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
