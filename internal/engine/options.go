package engine

import (
	"io"

	"moldyn/internal/config"
	"moldyn/internal/packages"
)

type options struct {
	installed    *packages.Set
	env          *config.Environment
	screenWriter io.Writer
}

// Option adjusts engine construction.
type Option func(*options)

// WithInstalledPackages overrides the installed package set. Tests use
// this to model stripped-down builds.
func WithInstalledPackages(set *packages.Set) Option {
	return func(o *options) {
		o.installed = set
	}
}

// WithEnvironment overrides the process environment layer.
func WithEnvironment(env *config.Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithScreenWriter redirects screen output to a writer instead of
// stdout and disables styling.
func WithScreenWriter(w io.Writer) Option {
	return func(o *options) {
		o.screenWriter = w
	}
}
