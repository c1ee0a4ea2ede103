package simtypes

// EchoMode controls where each input-deck line is echoed as it is read.
type EchoMode int

const (
	// EchoNone suppresses input echoing.
	EchoNone EchoMode = iota
	// EchoScreen echoes input lines to the screen stream only.
	EchoScreen
	// EchoLog echoes input lines to the log stream only.
	EchoLog
	// EchoBoth echoes input lines to both streams.
	EchoBoth
)

// String returns the command-line spelling of the echo mode.
func (m EchoMode) String() string {
	switch m {
	case EchoNone:
		return "none"
	case EchoScreen:
		return "screen"
	case EchoLog:
		return "log"
	case EchoBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseEchoMode converts a command-line token to an EchoMode, reporting
// whether the token named one.
func ParseEchoMode(token string) (EchoMode, bool) {
	switch token {
	case "none":
		return EchoNone, true
	case "screen":
		return EchoScreen, true
	case "log":
		return EchoLog, true
	case "both":
		return EchoBoth, true
	default:
		return EchoNone, false
	}
}
