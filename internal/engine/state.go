package engine

// State tracks an engine instance through its life cycle. Transitions
// only move forward; a failed bootstrap jumps straight to finalizing.
type State int

const (
	// StateCreated is the zero value before bootstrap begins.
	StateCreated State = iota

	// StateParsingArgs covers argument vector validation.
	StateParsingArgs

	// StateConfiguringAccelerators covers suffix and package checks.
	StateConfiguringAccelerators

	// StateConstructingSubsystems covers ordered subsystem creation.
	StateConstructingSubsystems

	// StateReady means the engine can process deck commands.
	StateReady

	// StateHelpOnly means bootstrap stopped at the usage banner. The
	// engine is destructible but has no subsystems.
	StateHelpOnly

	// StateFinalizing covers reverse-order subsystem release.
	StateFinalizing

	// StateDestroyed is terminal.
	StateDestroyed
)

// String returns the state name for logs and diagnostics.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateParsingArgs:
		return "parsing-args"
	case StateConfiguringAccelerators:
		return "configuring-accelerators"
	case StateConstructingSubsystems:
		return "constructing-subsystems"
	case StateReady:
		return "ready"
	case StateHelpOnly:
		return "help-only"
	case StateFinalizing:
		return "finalizing"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
