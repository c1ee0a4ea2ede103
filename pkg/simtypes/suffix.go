package simtypes

import "fmt"

// SuffixState holds the variant suffixes active for style resolution.
// Zero, one, or two suffix tokens may be set; the enable flag is true
// exactly when at least one token is set. The state is mutated only by the
// bootstrap/configuration protocol and is read-only for the rest of the
// engine's life, so reads during Ready need no synchronization.
type SuffixState struct {
	enabled   bool
	primary   string
	secondary string
}

// NewSuffixState returns a disabled suffix state with no tokens.
func NewSuffixState() *SuffixState {
	return &SuffixState{}
}

// Set installs one or two suffix tokens and enables suffix dispatch.
// The primary token is required; passing an empty primary is an error so
// the enabled-iff-set invariant cannot be broken.
func (s *SuffixState) Set(primary, secondary string) error {
	if primary == "" {
		return fmt.Errorf("suffix state: primary suffix must not be empty")
	}
	s.primary = primary
	s.secondary = secondary
	s.enabled = true
	return nil
}

// Clear disables suffix dispatch and drops both tokens.
func (s *SuffixState) Clear() {
	s.enabled = false
	s.primary = ""
	s.secondary = ""
}

// Enabled reports whether suffix dispatch is active.
func (s *SuffixState) Enabled() bool {
	return s.enabled
}

// Primary returns the first suffix token, or "" when disabled.
func (s *SuffixState) Primary() string {
	return s.primary
}

// Secondary returns the second suffix token, or "" when only one (or none)
// is set.
func (s *SuffixState) Secondary() string {
	return s.secondary
}

// Tokens returns the active suffix tokens in preference order. The slice is
// empty when dispatch is disabled.
func (s *SuffixState) Tokens() []string {
	if !s.enabled {
		return nil
	}
	if s.secondary == "" {
		return []string{s.primary}
	}
	return []string{s.primary, s.secondary}
}
