// Package version_test provides tests for version management functionality.
package version

import (
	"strings"
	"testing"
)

func TestGetCodenameForVersion(t *testing.T) {
	tests := []struct {
		name             string
		version          string
		expectedCodename string
	}{
		{
			name:             "exact match for 0.8.0",
			version:          "0.8.0",
			expectedCodename: "Topaz",
		},
		{
			name:             "patch version 0.8.1 should use 0.8.0 codename",
			version:          "0.8.1",
			expectedCodename: "Topaz",
		},
		{
			name:             "patch version 0.8.99 should use 0.8.0 codename",
			version:          "0.8.99",
			expectedCodename: "Topaz",
		},
		{
			name:             "exact match for 1.0.0",
			version:          "1.0.0",
			expectedCodename: "Diamond",
		},
		{
			name:             "version without codename",
			version:          "0.10.0",
			expectedCodename: "",
		},
		{
			name:             "patch version without base codename",
			version:          "0.10.5",
			expectedCodename: "",
		},
		{
			name:             "invalid version",
			version:          "invalid",
			expectedCodename: "",
		},
		{
			name:             "prerelease version should use base codename",
			version:          "0.8.0-alpha.1",
			expectedCodename: "Topaz",
		},
		{
			name:             "patch prerelease version should use base codename",
			version:          "0.8.3-beta.2",
			expectedCodename: "Topaz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetCodenameForVersion(tt.version)
			if result != tt.expectedCodename {
				t.Errorf("GetCodenameForVersion(%q) = %q, want %q", tt.version, result, tt.expectedCodename)
			}
		})
	}
}

func TestGetCodename(t *testing.T) {
	// Save original version
	originalVersion := Version
	defer func() {
		Version = originalVersion
	}()

	tests := []struct {
		name             string
		version          string
		expectedCodename string
	}{
		{
			name:             "current version 0.8.0",
			version:          "0.8.0",
			expectedCodename: "Topaz",
		},
		{
			name:             "current version 0.8.1",
			version:          "0.8.1",
			expectedCodename: "Topaz",
		},
		{
			name:             "current version without codename",
			version:          "0.10.0",
			expectedCodename: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			result := GetCodename()
			if result != tt.expectedCodename {
				t.Errorf("GetCodename() with Version=%q = %q, want %q", tt.version, result, tt.expectedCodename)
			}
		})
	}
}

func TestShort(t *testing.T) {
	// Save original version
	originalVersion := Version
	defer func() {
		Version = originalVersion
	}()

	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{
			name:     "version with codename",
			version:  "0.8.0",
			expected: "0.8.0 Topaz",
		},
		{
			name:     "patch release keeps codename",
			version:  "0.8.2",
			expected: "0.8.2 Topaz",
		},
		{
			name:     "version without codename falls back to bare version",
			version:  "0.10.0",
			expected: "0.10.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			result := Short()
			if result != tt.expected {
				t.Errorf("Short() with Version=%q = %q, want %q", tt.version, result, tt.expected)
			}
		})
	}
}

func TestHasGitInfo(t *testing.T) {
	// Save original values
	originalCommit := GitCommit
	originalBranch := GitBranch
	originalDescriptor := GitDescriptor
	defer func() {
		GitCommit = originalCommit
		GitBranch = originalBranch
		GitDescriptor = originalDescriptor
	}()

	tests := []struct {
		name       string
		commit     string
		branch     string
		descriptor string
		expected   bool
	}{
		{
			name:       "no git metadata injected",
			commit:     Unknown,
			branch:     Unknown,
			descriptor: Unknown,
			expected:   false,
		},
		{
			name:       "commit injected",
			commit:     "abc1234",
			branch:     Unknown,
			descriptor: Unknown,
			expected:   true,
		},
		{
			name:       "branch injected",
			commit:     Unknown,
			branch:     "develop",
			descriptor: Unknown,
			expected:   true,
		},
		{
			name:       "descriptor injected",
			commit:     Unknown,
			branch:     Unknown,
			descriptor: "v0.8.0-12-gabc1234",
			expected:   true,
		},
		{
			name:       "all injected",
			commit:     "abc1234",
			branch:     "main",
			descriptor: "v0.8.0",
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			GitCommit = tt.commit
			GitBranch = tt.branch
			GitDescriptor = tt.descriptor
			result := HasGitInfo()
			if result != tt.expected {
				t.Errorf("HasGitInfo() with commit=%q branch=%q descriptor=%q = %v, want %v",
					tt.commit, tt.branch, tt.descriptor, result, tt.expected)
			}
		})
	}
}

func TestGetInfoWithCodename(t *testing.T) {
	// Save original version
	originalVersion := Version
	defer func() {
		Version = originalVersion
	}()

	Version = "0.8.0"

	info, err := GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}

	if info.Version != "0.8.0" {
		t.Errorf("GetInfo().Version = %q, want %q", info.Version, "0.8.0")
	}

	if info.Codename != "Topaz" {
		t.Errorf("GetInfo().Codename = %q, want %q", info.Codename, "Topaz")
	}

	if info.SemVer == nil {
		t.Error("GetInfo().SemVer = nil, want parsed version")
	}
}

func TestGetInfoInvalidVersion(t *testing.T) {
	originalVersion := Version
	defer func() {
		Version = originalVersion
	}()

	Version = "not-a-version"

	if _, err := GetInfo(); err == nil {
		t.Error("GetInfo() with invalid version expected error but got none")
	}
}

func TestGetFormattedVersion(t *testing.T) {
	// Save original values
	originalVersion := Version
	originalCommit := GitCommit
	originalDate := BuildDate
	defer func() {
		Version = originalVersion
		GitCommit = originalCommit
		BuildDate = originalDate
	}()

	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
		contains  []string
		excludes  []string
	}{
		{
			name:      "development build shows only version and codename",
			version:   "0.8.0",
			commit:    Unknown,
			buildDate: "unknown",
			contains:  []string{"MolDyn v0.8.0", "'Topaz'"},
			excludes:  []string{"commit", "built"},
		},
		{
			name:      "release build shows short commit and date",
			version:   "0.8.0",
			commit:    "abc1234def5678",
			buildDate: "2026-08-25",
			contains:  []string{"MolDyn v0.8.0", "commit abc1234", "built 2026-08-25"},
			excludes:  []string{"abc1234d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			GitCommit = tt.commit
			BuildDate = tt.buildDate
			result := GetFormattedVersion()
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("GetFormattedVersion() = %q, missing %q", result, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(result, bad) {
					t.Errorf("GetFormattedVersion() = %q, should not contain %q", result, bad)
				}
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	// Save original version
	originalVersion := Version
	defer func() {
		Version = originalVersion
	}()

	tests := []struct {
		name        string
		version     string
		expectError bool
	}{
		{
			name:        "valid version",
			version:     "1.2.3",
			expectError: false,
		},
		{
			name:        "valid version with prerelease",
			version:     "1.2.3-alpha.1",
			expectError: false,
		},
		{
			name:        "invalid version",
			version:     "invalid",
			expectError: true,
		},
		{
			name:        "empty version",
			version:     "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			err := ValidateVersion()
			if tt.expectError && err == nil {
				t.Errorf("ValidateVersion() expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateVersion() unexpected error: %v", err)
			}
		})
	}
}

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		candidate string
		expected  bool
	}{
		{
			name:      "candidate newer",
			current:   "0.8.0",
			candidate: "0.9.0",
			expected:  true,
		},
		{
			name:      "candidate older",
			current:   "0.9.0",
			candidate: "0.8.0",
			expected:  false,
		},
		{
			name:      "equal versions",
			current:   "0.8.0",
			candidate: "0.8.0",
			expected:  false,
		},
		{
			name:      "prerelease is older than release",
			current:   "1.0.0-rc.1",
			candidate: "1.0.0",
			expected:  true,
		},
		{
			name:      "invalid current",
			current:   "invalid",
			candidate: "1.0.0",
			expected:  false,
		},
		{
			name:      "invalid candidate",
			current:   "1.0.0",
			candidate: "invalid",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNewerVersion(tt.current, tt.candidate)
			if result != tt.expected {
				t.Errorf("IsNewerVersion(%q, %q) = %v, want %v", tt.current, tt.candidate, result, tt.expected)
			}
		})
	}
}
