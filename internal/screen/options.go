package screen

import (
	"io"

	"moldyn/pkg/simtypes"
)

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithScreen redirects the screen stream to the given writer. Passing
// nil disables the screen.
func WithScreen(writer io.Writer) Option {
	return func(p *Printer) {
		p.screen = writer
	}
}

// WithLog attaches the log stream to the given writer. The printer does
// not close writers it did not open.
func WithLog(writer io.Writer) Option {
	return func(p *Printer) {
		p.log = writer
	}
}

// WithEcho sets the initial echo mode for input deck lines.
func WithEcho(mode simtypes.EchoMode) Option {
	return func(p *Printer) {
		p.echo = mode
	}
}

// WithColorMode forces the styling decision: "always", "never", or
// "auto" for terminal detection.
func WithColorMode(mode string) Option {
	return func(p *Printer) {
		p.colorMode = mode
	}
}

// Silent suppresses all output while leaving the streams attached.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}

// TestMode configures deterministic unstyled output for tests.
func TestMode() Option {
	return func(p *Printer) {
		p.colorMode = "never"
	}
}
