// Package cmdline parses the engine's argument vector. The grammar is
// single-dash flags, each consuming a fixed or option-dependent window
// of following tokens; parsing is strictly positional and fails fast on
// the first malformed flag. The parser only recognizes shape: whether a
// requested backend or package actually exists in this build is decided
// later by the accelerator layer.
package cmdline

import (
	"strconv"
	"strings"

	"moldyn/internal/logger"
	"moldyn/pkg/simtypes"
)

// DefaultLogName is the log file written when -log is not given.
const DefaultLogName = "log.moldyn"

// StreamNone is the sentinel path that disables a stream entirely.
const StreamNone = "none"

// PackageInvocation records one occurrence of the -pk flag. Arguments
// are kept verbatim; the accelerator layer interprets them per package.
type PackageInvocation struct {
	Keyword string
	Args    []string
}

// KokkosRequest records the -k flag. Threads and Devices are zero when
// the corresponding sub-option was not given.
type KokkosRequest struct {
	Enabled bool
	Threads int
	Devices int
}

// CommandLine is the validated result of scanning the argument vector.
type CommandLine struct {
	// Executable is argv[0], kept for banners and diagnostics.
	Executable string

	// Help short-circuits bootstrap to the usage banner.
	Help bool

	// InputPath names the input deck, empty to read stdin.
	InputPath string

	// LogPath names the log file. Defaults to DefaultLogName; the
	// StreamNone sentinel disables logging.
	LogPath string

	// ScreenPath redirects screen output, empty for stdout.
	ScreenPath string

	// Echo controls where input deck lines are echoed.
	Echo simtypes.EchoMode

	// Variables holds -var definitions for input deck substitution.
	Variables map[string]string

	// NoCite disables the citation reminder.
	NoCite bool

	// SuffixTokens holds zero, one, or two suffix names from -sf.
	SuffixTokens []string

	// Kokkos is nil unless -k appeared.
	Kokkos *KokkosRequest

	// Invocations holds every -pk occurrence in order.
	Invocations []PackageInvocation
}

// Parse scans argv and returns the validated command line. The first
// malformed flag aborts the scan with a SyntaxError naming it.
func Parse(argv []string) (*CommandLine, error) {
	if len(argv) == 0 {
		return nil, simtypes.SyntaxError{Detail: "empty argument vector"}
	}

	cl := &CommandLine{
		Executable: argv[0],
		LogPath:    DefaultLogName,
		Echo:       simtypes.EchoLog,
		Variables:  make(map[string]string),
	}

	i := 1
	for i < len(argv) {
		flag := argv[i]
		i++

		switch flag {
		case "-h", "-help":
			cl.Help = true

		case "-i", "-in":
			value, err := take(argv, &i, flag)
			if err != nil {
				return nil, err
			}
			cl.InputPath = value

		case "-l", "-log":
			value, err := take(argv, &i, flag)
			if err != nil {
				return nil, err
			}
			cl.LogPath = value

		case "-sc", "-screen":
			value, err := take(argv, &i, flag)
			if err != nil {
				return nil, err
			}
			cl.ScreenPath = value

		case "-e", "-echo":
			value, err := take(argv, &i, flag)
			if err != nil {
				return nil, err
			}
			mode, ok := simtypes.ParseEchoMode(value)
			if !ok {
				return nil, simtypes.SyntaxError{Flag: flag, Detail: "echo mode must be none, screen, log, or both"}
			}
			cl.Echo = mode

		case "-nc", "-nocite":
			cl.NoCite = true

		case "-v", "-var":
			name, err := take(argv, &i, flag)
			if err != nil {
				return nil, err
			}
			values := window(argv, &i)
			if len(values) == 0 {
				return nil, simtypes.SyntaxError{Flag: flag, Detail: "variable " + name + " needs at least one value"}
			}
			cl.Variables[name] = strings.Join(values, " ")

		case "-sf", "-suffix":
			if err := parseSuffix(argv, &i, cl); err != nil {
				return nil, err
			}

		case "-k", "-kokkos":
			if err := parseKokkos(argv, &i, cl); err != nil {
				return nil, err
			}

		case "-pk", "-package":
			keyword, err := take(argv, &i, flag)
			if err != nil {
				return nil, err
			}
			cl.Invocations = append(cl.Invocations, PackageInvocation{
				Keyword: keyword,
				Args:    window(argv, &i),
			})

		default:
			return nil, simtypes.SyntaxError{Flag: flag, Detail: "unrecognized argument"}
		}
	}

	logger.Debug("command line parsed",
		"executable", cl.Executable,
		"help", cl.Help,
		"suffixes", cl.SuffixTokens,
		"invocations", len(cl.Invocations))

	return cl, nil
}

// parseSuffix handles -sf. The plain form takes one suffix name; the
// hybrid form takes exactly two.
func parseSuffix(argv []string, i *int, cl *CommandLine) error {
	first, err := take(argv, i, "-sf")
	if err != nil {
		return err
	}

	if first != "hybrid" {
		cl.SuffixTokens = []string{first}
		return nil
	}

	primary, err := take(argv, i, "-sf")
	if err != nil {
		return simtypes.SyntaxError{Flag: "-sf", Detail: "hybrid form needs two suffix names"}
	}
	secondary, err := take(argv, i, "-sf")
	if err != nil {
		return simtypes.SyntaxError{Flag: "-sf", Detail: "hybrid form needs two suffix names"}
	}
	cl.SuffixTokens = []string{primary, secondary}
	return nil
}

// parseKokkos handles -k: an on/off toggle followed by sub-option
// pairs (t <threads>, g <devices>) up to the next flag.
func parseKokkos(argv []string, i *int, cl *CommandLine) error {
	toggle, err := take(argv, i, "-k")
	if err != nil {
		return err
	}

	req := &KokkosRequest{}
	switch toggle {
	case "on":
		req.Enabled = true
	case "off":
		req.Enabled = false
	default:
		return simtypes.SyntaxError{Flag: "-k", Detail: "first argument must be on or off"}
	}

	for *i < len(argv) && !isFlag(argv[*i]) {
		sub := argv[*i]
		*i++

		value, err := take(argv, i, "-k")
		if err != nil {
			return simtypes.SyntaxError{Flag: "-k", Detail: "sub-option " + sub + " needs a value"}
		}
		n, convErr := strconv.Atoi(value)
		if convErr != nil || n <= 0 {
			return simtypes.SyntaxError{Flag: "-k", Detail: "sub-option " + sub + " needs a positive integer, got " + value}
		}

		switch sub {
		case "t":
			req.Threads = n
		case "g":
			req.Devices = n
		default:
			return simtypes.SyntaxError{Flag: "-k", Detail: "unknown sub-option " + sub}
		}
	}

	cl.Kokkos = req
	return nil
}

// take consumes and returns the token at *i, or fails the flag when the
// argument vector is exhausted.
func take(argv []string, i *int, flag string) (string, error) {
	if *i >= len(argv) {
		return "", simtypes.SyntaxError{Flag: flag, Detail: "missing required argument"}
	}
	value := argv[*i]
	*i++
	return value, nil
}

// window consumes tokens up to but not including the next flag.
func window(argv []string, i *int) []string {
	var out []string
	for *i < len(argv) && !isFlag(argv[*i]) {
		out = append(out, argv[*i])
		*i++
	}
	return out
}

func isFlag(token string) bool {
	return strings.HasPrefix(token, "-")
}
