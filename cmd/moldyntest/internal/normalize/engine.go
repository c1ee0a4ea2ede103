// Package normalize provides output normalization for deck test comparisons.
package normalize

import (
	"fmt"
	"os"
	"os/user"
	"regexp"
	"strings"
)

// Pattern represents a pattern for normalizing test output
type Pattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// Engine handles normalization of volatile engine output
type Engine struct {
	patterns []Pattern
}

// NewEngine creates a normalization engine with the built-in patterns
func NewEngine() *Engine {
	ne := &Engine{}
	ne.initBuiltinPatterns()
	return ne
}

// initBuiltinPatterns registers the parts of engine output that vary
// between runs or machines.
func (ne *Engine) initBuiltinPatterns() {
	// Run duration reported after every run command.
	ne.patterns = append(ne.patterns, Pattern{
		Name:    "loop_time",
		Pattern: regexp.MustCompile(`Loop time of \d+\.\d+ on \d+ procs`),
	})

	// Total wall time printed at shutdown.
	ne.patterns = append(ne.patterns, Pattern{
		Name:    "wall_time",
		Pattern: regexp.MustCompile(`Total wall time: \d+:\d{2}:\d{2}`),
	})

	// Per-run identifier shown by diagnostics output.
	ne.patterns = append(ne.patterns, Pattern{
		Name:    "run_id",
		Pattern: regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`),
	})

	ne.addUsernameMasking()
}

// addUsernameMasking masks the current username so recordings made on
// one machine compare cleanly on another. Deck errors can embed
// absolute paths.
func (ne *Engine) addUsernameMasking() {
	currentUser, err := user.Current()
	if err != nil {
		if username := os.Getenv("USER"); username != "" {
			ne.addUsernamePattern(username)
		}
		return
	}
	if currentUser.Username != "" {
		ne.addUsernamePattern(currentUser.Username)
	}
}

func (ne *Engine) addUsernamePattern(username string) {
	if len(username) < 2 || len(username) > 50 {
		return
	}
	if isCommonUsername(username) {
		return
	}

	ne.patterns = append(ne.patterns, Pattern{
		Name:    "username",
		Pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(username) + `\b`),
	})
}

// isCommonUsername reports whether the username is a generic account
// name that is not personally identifying and should stay visible.
func isCommonUsername(username string) bool {
	commonUsernames := []string{
		"runner", "ci", "github", "gitlab", "jenkins", "build",
		"admin", "user", "test", "testuser", "guest",
		"root", "daemon", "nobody",
		"dev", "developer", "tester", "qa", "demo",
		"ubuntu", "centos", "debian", "alpine",
	}

	lower := strings.ToLower(username)
	for _, common := range commonUsernames {
		if lower == common {
			return true
		}
	}
	return false
}

// NormalizeOutput replaces volatile content with placeholders
func (ne *Engine) NormalizeOutput(output string) string {
	normalized := output
	for _, pattern := range ne.patterns {
		placeholder := "<" + pattern.Name + ">"
		normalized = pattern.Pattern.ReplaceAllString(normalized, placeholder)
	}
	return normalized
}

// IsPlaceholderLine checks if a line contains a placeholder pattern
func (ne *Engine) IsPlaceholderLine(line string) bool {
	return strings.Contains(line, "<") && strings.Contains(line, ">")
}

// ParsePlaceholder extracts the placeholder name from a placeholder string
func (ne *Engine) ParsePlaceholder(placeholder string) (string, error) {
	start := strings.Index(placeholder, "<")
	end := strings.Index(placeholder, ">")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("invalid placeholder format")
	}
	return placeholder[start+1 : end], nil
}

// MatchLineWithPlaceholders checks if an actual line matches an expected
// line that may contain placeholders
func (ne *Engine) MatchLineWithPlaceholders(expected, actual string) bool {
	if !ne.IsPlaceholderLine(expected) {
		return expected == actual
	}

	// Normalize both sides; recorded placeholders pass through untouched.
	return ne.NormalizeOutput(expected) == ne.NormalizeOutput(actual)
}

// CompareWithPlaceholders compares two outputs line by line, honoring
// placeholder patterns in the expected output
func (ne *Engine) CompareWithPlaceholders(expected, actual string) bool {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	if len(expectedLines) != len(actualLines) {
		return false
	}

	for i, expectedLine := range expectedLines {
		if !ne.MatchLineWithPlaceholders(expectedLine, actualLines[i]) {
			return false
		}
	}

	return true
}
