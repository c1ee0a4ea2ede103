// Package input reads simulation decks: it assembles logical lines
// across continuations, substitutes variables, and splits commands into
// tokens. Command dispatch stays with the engine; this package only
// produces commands.
package input

import (
	"fmt"
	"sort"
	"strings"
)

// Variables holds the deck's named string variables. Command line -var
// definitions seed the table before the first line is read.
type Variables struct {
	values map[string]string
}

// NewVariables builds a variable table from initial definitions.
func NewVariables(initial map[string]string) *Variables {
	v := &Variables{values: make(map[string]string, len(initial))}
	for name, value := range initial {
		v.values[name] = value
	}
	return v
}

// Set defines or redefines a variable.
func (v *Variables) Set(name, value string) error {
	if name == "" {
		return fmt.Errorf("variable name cannot be empty")
	}
	v.values[name] = value
	return nil
}

// Get returns a variable's value.
func (v *Variables) Get(name string) (string, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Delete removes a variable. Unknown names are a no-op.
func (v *Variables) Delete(name string) {
	delete(v.values, name)
}

// Names returns the defined variable names in sorted order.
func (v *Variables) Names() []string {
	out := make([]string, 0, len(v.values))
	for name := range v.values {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Substitute expands every ${name} reference in a line. Referencing an
// undefined variable is an error.
func (v *Variables) Substitute(line string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(line); {
		if line[i] != '$' || i+1 >= len(line) || line[i+1] != '{' {
			out.WriteByte(line[i])
			i++
			continue
		}
		end := strings.IndexByte(line[i+2:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated variable reference in %q", line)
		}
		name := line[i+2 : i+2+end]
		value, ok := v.values[name]
		if !ok {
			return "", fmt.Errorf("substitution for undefined variable %s", name)
		}
		out.WriteString(value)
		i += end + 3
	}
	return out.String(), nil
}
