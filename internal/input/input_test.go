package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariablesSubstitute(t *testing.T) {
	vars := NewVariables(map[string]string{
		"x":    "10",
		"name": "melt",
	})

	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"no references", "units lj", "units lj"},
		{"single reference", "log log.${name}", "log log.melt"},
		{"multiple references", "region box block 0 ${x} 0 ${x} 0 ${x}", "region box block 0 10 0 10 0 10"},
		{"adjacent text", "print x=${x}!", "print x=10!"},
		{"lone dollar", "price is $5", "price is $5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vars.Substitute(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVariablesSubstituteErrors(t *testing.T) {
	vars := NewVariables(nil)

	_, err := vars.Substitute("log log.${name}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable name")

	_, err = vars.Substitute("print ${unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")
}

func TestVariablesTable(t *testing.T) {
	vars := NewVariables(nil)
	require.NoError(t, vars.Set("t", "300"))
	require.NoError(t, vars.Set("a", "1"))

	value, ok := vars.Get("t")
	require.True(t, ok)
	assert.Equal(t, "300", value)

	assert.Equal(t, []string{"a", "t"}, vars.Names())

	vars.Delete("t")
	_, ok = vars.Get("t")
	assert.False(t, ok)

	assert.Error(t, vars.Set("", "oops"))
}

func readAll(t *testing.T, r *Reader) []Command {
	t.Helper()
	var commands []Command
	for {
		cmd, err := r.Next()
		if err == io.EOF {
			return commands
		}
		require.NoError(t, err)
		commands = append(commands, cmd)
	}
}

func TestReaderBasicCommands(t *testing.T) {
	deck := strings.Join([]string{
		"# melt deck",
		"units lj",
		"",
		"atom_style atomic   # default anyway",
		"timestep 0.005",
	}, "\n")

	reader := NewReader(nil)
	require.NoError(t, reader.Push(strings.NewReader(deck), "in.melt"))

	commands := readAll(t, reader)
	require.Len(t, commands, 3)
	assert.Equal(t, "units", commands[0].Name)
	assert.Equal(t, []string{"lj"}, commands[0].Args)
	assert.Equal(t, "atom_style", commands[1].Name)
	assert.Equal(t, []string{"atomic"}, commands[1].Args)
	assert.Equal(t, "timestep", commands[2].Name)
}

func TestReaderContinuation(t *testing.T) {
	deck := "pair_coeff 1 1 &\n    1.0 1.0 &\n    2.5\n"

	reader := NewReader(nil)
	require.NoError(t, reader.Push(strings.NewReader(deck), "in.melt"))

	cmd, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "pair_coeff", cmd.Name)
	assert.Equal(t, []string{"1", "1", "1.0", "1.0", "2.5"}, cmd.Args)
}

func TestReaderContinuationAtEOF(t *testing.T) {
	reader := NewReader(nil)
	require.NoError(t, reader.Push(strings.NewReader("units lj &"), "in.melt"))

	_, err := reader.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "continued line")
}

func TestReaderQuotedArguments(t *testing.T) {
	deck := `print "Setup complete, starting run"` + "\n" + `print "hash # inside"`

	reader := NewReader(nil)
	require.NoError(t, reader.Push(strings.NewReader(deck), "in.melt"))

	commands := readAll(t, reader)
	require.Len(t, commands, 2)
	assert.Equal(t, []string{"Setup complete, starting run"}, commands[0].Args)
	assert.Equal(t, []string{"hash # inside"}, commands[1].Args)
}

func TestReaderUnterminatedQuote(t *testing.T) {
	reader := NewReader(nil)
	require.NoError(t, reader.Push(strings.NewReader(`print "oops`), "in.melt"))

	_, err := reader.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated quote")
}

func TestReaderSubstitution(t *testing.T) {
	vars := NewVariables(map[string]string{"x": "10 10 20"})
	reader := NewReader(vars)
	require.NoError(t, reader.Push(strings.NewReader("region box block 0 ${x}"), "in.melt"))

	cmd, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"box", "block", "0", "10", "10", "20"}, cmd.Args)
}

func TestReaderUndefinedVariablePosition(t *testing.T) {
	reader := NewReader(nil)
	require.NoError(t, reader.Push(strings.NewReader("units lj\nlog log.${name}"), "in.melt"))

	_, err := reader.Next()
	require.NoError(t, err)

	_, err = reader.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in.melt line 2")
	assert.Contains(t, err.Error(), "undefined variable name")
}

func TestReaderIncludeStack(t *testing.T) {
	reader := NewReader(nil)
	require.NoError(t, reader.Push(strings.NewReader("units lj\ntimestep 0.005"), "outer"))

	cmd, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "units", cmd.Name)

	// Simulate an include: the inner deck runs to completion before the
	// outer deck resumes.
	require.NoError(t, reader.Push(strings.NewReader("thermo 100"), "inner"))
	assert.Equal(t, 2, reader.Depth())

	cmd, err = reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "thermo", cmd.Name)

	cmd, err = reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "timestep", cmd.Name)
	assert.Equal(t, 1, reader.Depth())

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderPushFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.melt")
	require.NoError(t, os.WriteFile(path, []byte("units metal\n"), 0o644))

	reader := NewReader(nil)
	require.NoError(t, reader.PushFile(path))

	cmd, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "units", cmd.Name)
	assert.Equal(t, []string{"metal"}, cmd.Args)

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
	require.NoError(t, reader.Close())
}

func TestReaderPushFileMissing(t *testing.T) {
	reader := NewReader(nil)
	err := reader.PushFile(filepath.Join(t.TempDir(), "absent.in"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open deck")
}

func TestReaderDepthLimit(t *testing.T) {
	reader := NewReader(nil)
	for i := 0; i < maxIncludeDepth; i++ {
		require.NoError(t, reader.Push(strings.NewReader(""), fmt.Sprintf("deck%d", i)))
	}
	err := reader.Push(strings.NewReader(""), "one too many")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include depth")
}

func TestReaderEchoHook(t *testing.T) {
	var echoed []string
	reader := NewReader(nil)
	reader.SetEcho(func(line string) { echoed = append(echoed, line) })
	require.NoError(t, reader.Push(strings.NewReader("# comment only\nunits lj\n"), "in.melt"))

	commands := readAll(t, reader)
	require.Len(t, commands, 1)

	// Raw lines are echoed before comment stripping, so the comment
	// line appears even though it produces no command.
	assert.Equal(t, []string{"# comment only", "units lj"}, echoed)
}

func TestReaderEmptyStack(t *testing.T) {
	reader := NewReader(nil)
	_, err := reader.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "<no deck>", reader.Position())
}
