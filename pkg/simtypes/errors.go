package simtypes

import (
	"fmt"
	"strings"
)

// SyntaxError reports a malformed command line flag: a missing
// sub-argument, a non-numeric or out-of-range value, or a token the
// grammar does not recognize. Bootstrap fails fast on the first one.
type SyntaxError struct {
	Flag   string // The flag being parsed when the problem was found
	Detail string // Human-readable description of the problem
}

// Error implements the error interface for SyntaxError.
func (e SyntaxError) Error() string {
	if e.Flag == "" {
		return fmt.Sprintf("invalid command line: %s", e.Detail)
	}
	return fmt.Sprintf("invalid command line flag %s: %s", e.Flag, e.Detail)
}

// UnavailablePackageError reports a flag that requests a package or
// backend not compiled into this build.
type UnavailablePackageError struct {
	Flag    string      // The flag that made the request
	Package PackageName // The package the build lacks
}

// Error implements the error interface for UnavailablePackageError.
func (e UnavailablePackageError) Error() string {
	return fmt.Sprintf("flag %s requires package %s which is not installed in this build", e.Flag, e.Package)
}

// UnknownStyleError reports that none of the candidate keywords for a
// requested style matched a registered implementation. The candidate
// list preserves the order in which resolution tried them.
type UnknownStyleError struct {
	Category StyleCategory
	Keyword  string
	Tried    []string
}

// Error implements the error interface for UnknownStyleError.
func (e UnknownStyleError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("unknown %s style %s", e.Category, e.Keyword)
	}
	return fmt.Sprintf("unknown %s style %s (tried %s)", e.Category, e.Keyword, strings.Join(e.Tried, ", "))
}

// ConstructionError reports a mandatory subsystem that failed to
// construct during bootstrap. Subsystems built before the failure are
// released in reverse order before this error is surfaced.
type ConstructionError struct {
	Subsystem string
	Err       error
}

// Error implements the error interface for ConstructionError.
func (e ConstructionError) Error() string {
	return fmt.Sprintf("constructing %s subsystem: %v", e.Subsystem, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (e ConstructionError) Unwrap() error {
	return e.Err
}
