package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"moldyn/internal/logger"
)

// maxIncludeDepth bounds the include stack so a self-including deck
// fails instead of looping.
const maxIncludeDepth = 16

// Command is one deck command after substitution and tokenization.
type Command struct {
	Name string
	Args []string
	Raw  string
}

// source is one open deck on the include stack.
type source struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer
	lineno  int
}

// Reader produces commands from a stack of deck sources. Includes push
// a new source; when it is exhausted reading resumes in the includer.
type Reader struct {
	vars  *Variables
	stack []*source
	echo  func(line string)
}

// NewReader builds a reader over the given variable table. A nil table
// gets an empty one.
func NewReader(vars *Variables) *Reader {
	if vars == nil {
		vars = NewVariables(nil)
	}
	return &Reader{vars: vars}
}

// SetEcho installs a hook invoked with each raw logical line before
// substitution. The engine routes it to the echo streams.
func (r *Reader) SetEcho(echo func(line string)) {
	r.echo = echo
}

// Variables returns the reader's variable table.
func (r *Reader) Variables() *Variables {
	return r.vars
}

// Push adds an in-memory source on top of the stack.
func (r *Reader) Push(reader io.Reader, name string) error {
	if len(r.stack) >= maxIncludeDepth {
		return fmt.Errorf("include depth exceeds %d, deck %s may include itself", maxIncludeDepth, name)
	}
	r.stack = append(r.stack, &source{
		name:    name,
		scanner: bufio.NewScanner(reader),
	})
	logger.Debug("deck source pushed", "name", name, "depth", len(r.stack))
	return nil
}

// PushFile opens a deck file and adds it on top of the stack.
func (r *Reader) PushFile(path string) error {
	if len(r.stack) >= maxIncludeDepth {
		return fmt.Errorf("include depth exceeds %d, deck %s may include itself", maxIncludeDepth, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open deck %s: %w", path, err)
	}
	r.stack = append(r.stack, &source{
		name:    path,
		scanner: bufio.NewScanner(f),
		closer:  f,
	})
	logger.Debug("deck file pushed", "name", path, "depth", len(r.stack))
	return nil
}

// Depth returns the number of open sources.
func (r *Reader) Depth() int {
	return len(r.stack)
}

// Position names the current source and line for error messages.
func (r *Reader) Position() string {
	if len(r.stack) == 0 {
		return "<no deck>"
	}
	top := r.stack[len(r.stack)-1]
	return fmt.Sprintf("%s line %d", top.name, top.lineno)
}

// Next returns the next command. It returns io.EOF once every source
// is exhausted.
func (r *Reader) Next() (Command, error) {
	for {
		line, err := r.logicalLine()
		if err == io.EOF {
			return Command{}, io.EOF
		}
		if err != nil {
			return Command{}, err
		}
		if r.echo != nil {
			r.echo(line)
		}

		stripped := stripComment(line)
		if strings.TrimSpace(stripped) == "" {
			continue
		}
		substituted, err := r.vars.Substitute(stripped)
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", r.Position(), err)
		}
		tokens, err := tokenize(substituted)
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", r.Position(), err)
		}
		if len(tokens) == 0 {
			continue
		}
		return Command{Name: tokens[0], Args: tokens[1:], Raw: line}, nil
	}
}

// Close releases every open source.
func (r *Reader) Close() error {
	var first error
	for _, s := range r.stack {
		if s.closer == nil {
			continue
		}
		if err := s.closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.stack = nil
	return first
}

// logicalLine reads one line, joining continuations ending in &.
func (r *Reader) logicalLine() (string, error) {
	var parts []string
	for {
		raw, err := r.rawLine()
		if err != nil {
			if err == io.EOF && len(parts) > 0 {
				return "", fmt.Errorf("deck ends inside a continued line")
			}
			return "", err
		}
		trimmed := strings.TrimRight(raw, " \t")
		if strings.HasSuffix(trimmed, "&") {
			parts = append(parts, strings.TrimSuffix(trimmed, "&"))
			continue
		}
		parts = append(parts, raw)
		return strings.Join(parts, ""), nil
	}
}

// rawLine reads the next physical line, popping exhausted sources.
func (r *Reader) rawLine() (string, error) {
	for len(r.stack) > 0 {
		top := r.stack[len(r.stack)-1]
		if top.scanner.Scan() {
			top.lineno++
			return top.scanner.Text(), nil
		}
		if err := top.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading deck %s: %w", top.name, err)
		}
		if top.closer != nil {
			if err := top.closer.Close(); err != nil {
				return "", fmt.Errorf("closing deck %s: %w", top.name, err)
			}
		}
		r.stack = r.stack[:len(r.stack)-1]
		logger.Debug("deck source exhausted", "name", top.name, "depth", len(r.stack))
	}
	return "", io.EOF
}

// stripComment removes a trailing # comment. Hashes inside double
// quotes are kept.
func stripComment(line string) string {
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case '#':
			if !inQuote {
				return line[:i]
			}
		}
	}
	return line
}

// tokenize splits a command line on whitespace, keeping double-quoted
// runs together.
func tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuote {
				tokens = append(tokens, current.String())
				current.Reset()
				inQuote = false
			} else {
				flush()
				inQuote = true
			}
		case !inQuote && (c == ' ' || c == '\t'):
			flush()
		default:
			current.WriteByte(c)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	flush()
	return tokens, nil
}
