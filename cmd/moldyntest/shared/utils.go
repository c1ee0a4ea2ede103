// Package shared provides common utilities for moldyntest.
package shared

import (
	"path/filepath"
	"strings"
)

// DeckExtension is the file suffix of test deck scripts.
const DeckExtension = ".in"

// FindDeck locates a test deck in the test directory
func FindDeck(testName, testDir string) string {
	return filepath.Join(testDir, testName+DeckExtension)
}

// CleanOutput normalizes engine output for consistent comparison.
// Only trailing newlines are removed; trailing spaces within lines are
// preserved because deck echo and print output may carry them.
func CleanOutput(output string) string {
	return strings.TrimRight(output, "\n")
}

// FindAllDecks finds every test deck in a directory and returns the
// test names without the deck extension.
func FindAllDecks(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*"+DeckExtension)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var basenames []string
	for _, match := range matches {
		basename := filepath.Base(match)
		basenames = append(basenames, strings.TrimSuffix(basename, DeckExtension))
	}

	return basenames, nil
}
