// Package screen manages the engine's two user-facing output streams:
// the interactive screen and the run log. Run output goes to both, deck
// echo routing follows the configured echo mode, and warnings are
// styled on the screen while the log always receives plain text.
package screen

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"moldyn/internal/cmdline"
	"moldyn/pkg/simtypes"
)

var warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

// Printer owns the screen and log streams. All methods are safe for
// concurrent use; file handles opened by the printer are closed by
// Close.
type Printer struct {
	mu sync.Mutex

	screen io.Writer
	log    io.Writer

	// Files the printer opened itself and must close.
	screenFile *os.File
	logFile    *os.File

	echo      simtypes.EchoMode
	colorMode string
	styled    bool
	silent    bool
	closed    bool
}

// New returns a printer writing to stdout with no log stream attached.
// Styling is decided by the color mode and terminal capabilities.
func New(options ...Option) *Printer {
	p := &Printer{
		screen:    os.Stdout,
		echo:      simtypes.EchoLog,
		colorMode: "auto",
	}

	for _, opt := range options {
		opt(p)
	}

	p.styled = p.decideStyling()
	return p
}

// decideStyling applies the color mode against the attached screen.
func (p *Printer) decideStyling() bool {
	switch p.colorMode {
	case "always":
		return true
	case "never":
		return false
	}

	file, ok := p.screen.(*os.File)
	if !ok {
		return false
	}
	return termenv.NewOutput(file).ColorProfile() != termenv.Ascii
}

// OpenFiles attaches the streams named on the command line. An empty
// screen path keeps stdout; the none sentinel disables a stream; any
// other value opens (truncating) the named file.
func (p *Printer) OpenFiles(screenPath, logPath string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch screenPath {
	case "":
		// keep stdout
	case cmdline.StreamNone:
		p.screen = nil
	default:
		file, err := os.Create(screenPath)
		if err != nil {
			return fmt.Errorf("cannot open screen file %s: %w", screenPath, err)
		}
		p.screen = file
		p.screenFile = file
		p.styled = false
	}

	switch logPath {
	case "", cmdline.StreamNone:
		p.log = nil
	default:
		file, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("cannot open log file %s: %w", logPath, err)
		}
		p.log = file
		p.logFile = file
	}

	return nil
}

// SwitchLog redirects the log stream to a new file, closing the one the
// printer owns. The none sentinel turns logging off.
func (p *Printer) SwitchLog(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.logFile != nil {
		_ = p.logFile.Close()
		p.logFile = nil
	}
	p.log = nil

	if path == cmdline.StreamNone || path == "" {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	p.log = file
	p.logFile = file
	return nil
}

// SetEcho changes where deck lines are echoed.
func (p *Printer) SetEcho(mode simtypes.EchoMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.echo = mode
}

// Echo returns the current echo mode.
func (p *Printer) Echo() simtypes.EchoMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.echo
}

// Line writes one line of run output to both streams.
func (p *Printer) Line(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writeScreen(text)
	p.writeLog(text)
}

// Linef formats and writes one line of run output to both streams.
func (p *Printer) Linef(format string, args ...interface{}) {
	p.Line(fmt.Sprintf(format, args...))
}

// Warn writes a warning: styled on the screen when styling is active,
// always plain in the log.
func (p *Printer) Warn(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	message := "WARNING: " + text
	if p.styled {
		p.writeScreen(warnStyle.Render(message))
	} else {
		p.writeScreen(message)
	}
	p.writeLog(message)
}

// EchoLine routes one input deck line according to the echo mode.
func (p *Printer) EchoLine(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.echo {
	case simtypes.EchoScreen:
		p.writeScreen(line)
	case simtypes.EchoLog:
		p.writeLog(line)
	case simtypes.EchoBoth:
		p.writeScreen(line)
		p.writeLog(line)
	}
}

// writeScreen writes one line to the screen stream. Callers hold the
// lock.
func (p *Printer) writeScreen(text string) {
	if p.silent || p.screen == nil {
		return
	}
	_, _ = fmt.Fprintln(p.screen, text)
}

// writeLog writes one line to the log stream with any ANSI styling
// stripped. Callers hold the lock.
func (p *Printer) writeLog(text string) {
	if p.silent || p.log == nil {
		return
	}
	_, _ = fmt.Fprintln(p.log, ansi.Strip(text))
}

// Close flushes and closes any files the printer opened. Safe to call
// more than once.
func (p *Printer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []string
	if p.screenFile != nil {
		if err := p.screenFile.Close(); err != nil {
			errs = append(errs, err.Error())
		}
		p.screenFile = nil
		p.screen = nil
	}
	if p.logFile != nil {
		if err := p.logFile.Close(); err != nil {
			errs = append(errs, err.Error())
		}
		p.logFile = nil
		p.log = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("closing output streams: %s", strings.Join(errs, "; "))
	}
	return nil
}
