// Package version provides centralized version management for MolDyn.
// It supports semantic versioning, build-time injection of git metadata,
// and the release-codename scheme used in the startup banner.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Product naming used across banners, logs, and diagnostics.
const (
	// ProductName is the short engine name.
	ProductName = "MolDyn"
	// ProductLong is the full product line printed by the help banner.
	ProductLong = "Modular Atomic/Molecular Dynamics Simulator"
)

// Unknown is the placeholder for git metadata that was not injected at
// build time. Queries distinguish real metadata from this sentinel.
const Unknown = "(unknown)"

// Build information that can be set at compile time via -ldflags.
var (
	// Version is the semantic version of the engine.
	Version = "0.8.0"

	// GitCommit is the git commit hash recorded when the binary was built.
	GitCommit = Unknown

	// GitBranch is the git branch recorded when the binary was built.
	GitBranch = Unknown

	// GitDescriptor is the `git describe` output recorded at build time.
	GitDescriptor = Unknown

	// BuildDate is the date the binary was built.
	BuildDate = "unknown"
)

// versionCodenames maps minor releases to their mineral codenames,
// hardening up the Mohs scale as the engine matures.
var versionCodenames = map[string]string{
	"0.4.0": "Gypsum",
	"0.5.0": "Apatite",
	"0.6.0": "Feldspar",
	"0.7.0": "Quartz",
	"0.8.0": "Topaz",
	"0.9.0": "Corundum",
	"1.0.0": "Diamond",
}

// Info represents comprehensive version information.
type Info struct {
	Version       string `yaml:"version" json:"version"`
	Codename      string `yaml:"codename" json:"codename"`
	GitCommit     string `yaml:"git_commit" json:"gitCommit"`
	GitBranch     string `yaml:"git_branch" json:"gitBranch"`
	GitDescriptor string `yaml:"git_descriptor" json:"gitDescriptor"`
	BuildDate     string `yaml:"build_date" json:"buildDate"`
	GoVersion     string `yaml:"go_version" json:"goVersion"`
	Platform      string `yaml:"platform" json:"platform"`

	SemVer *semver.Version `yaml:"-" json:"-"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetCodename returns the codename for the current version.
func GetCodename() string {
	return GetCodenameForVersion(Version)
}

// GetCodenameForVersion returns the codename for a specific version.
// Patch releases share the codename of their major.minor.0 base.
func GetCodenameForVersion(version string) string {
	if codename, exists := versionCodenames[version]; exists {
		return codename
	}

	sv, err := semver.NewVersion(version)
	if err != nil {
		return ""
	}

	baseVersion := fmt.Sprintf("%d.%d.0", sv.Major(), sv.Minor())
	if codename, exists := versionCodenames[baseVersion]; exists {
		return codename
	}

	return ""
}

// HasGitInfo reports whether any git metadata was injected at build time.
func HasGitInfo() bool {
	return GitCommit != Unknown || GitBranch != Unknown || GitDescriptor != Unknown
}

// GetInfo returns comprehensive version information.
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:       Version,
		Codename:      GetCodename(),
		GitCommit:     GitCommit,
		GitBranch:     GitBranch,
		GitDescriptor: GitDescriptor,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		Platform:      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:        sv,
	}, nil
}

// Short returns the version with its codename, e.g. "0.8.0 Topaz".
// This is the form the startup banner embeds.
func Short() string {
	if codename := GetCodename(); codename != "" {
		return fmt.Sprintf("%s %s", Version, codename)
	}
	return Version
}

// GetFormattedVersion returns a one-line version string for the version
// subcommand.
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("%s v%s (invalid version)", ProductName, Version)
	}

	var parts []string

	if info.Codename != "" {
		parts = append(parts, fmt.Sprintf("%s v%s '%s'", ProductName, info.Version, info.Codename))
	} else {
		parts = append(parts, fmt.Sprintf("%s v%s", ProductName, info.Version))
	}

	if info.GitCommit != Unknown && info.GitCommit != "" {
		shortCommit := info.GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}

	if info.BuildDate != "unknown" && info.BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", info.BuildDate))
	}

	return strings.Join(parts, ", ")
}

// GetDetailedVersion returns multi-line version information for debugging.
func GetDetailedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("%s v%s (error: %v)", ProductName, Version, err)
	}

	var lines []string

	if info.Codename != "" {
		lines = append(lines, fmt.Sprintf("%s v%s '%s'", ProductName, info.Version, info.Codename))
	} else {
		lines = append(lines, fmt.Sprintf("%s v%s", ProductName, info.Version))
	}

	lines = append(lines, fmt.Sprintf("Git Commit: %s", info.GitCommit))
	lines = append(lines, fmt.Sprintf("Git Branch: %s", info.GitBranch))
	lines = append(lines, fmt.Sprintf("Git Descriptor: %s", info.GitDescriptor))
	lines = append(lines, fmt.Sprintf("Build Date: %s", info.BuildDate))
	lines = append(lines, fmt.Sprintf("Go Version: %s", info.GoVersion))
	lines = append(lines, fmt.Sprintf("Platform: %s", info.Platform))

	return strings.Join(lines, "\n")
}

// IsNewerVersion reports whether candidate is a strictly newer semantic
// version than current. Malformed versions compare as not newer.
func IsNewerVersion(current, candidate string) bool {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return false
	}
	cand, err := semver.NewVersion(candidate)
	if err != nil {
		return false
	}
	return cand.GreaterThan(cur)
}

// ValidateVersion validates that the current version is a valid semantic
// version.
func ValidateVersion() error {
	if _, err := semver.NewVersion(Version); err != nil {
		return fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}
	return nil
}
