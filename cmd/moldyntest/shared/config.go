// Package shared provides common configuration and utilities for moldyntest.
package shared

// Config holds the global configuration for moldyntest
type Config struct {
	TestDir     string
	EngineCmd   string
	Verbose     bool
	TestTimeout int
}

// Default configuration values
const (
	DefaultTestDir     = "test/decks"
	DefaultEngineCmd   = "moldyn"
	DefaultTestTimeout = 60
)

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		TestDir:     DefaultTestDir,
		EngineCmd:   DefaultEngineCmd,
		Verbose:     false,
		TestTimeout: DefaultTestTimeout,
	}
}
