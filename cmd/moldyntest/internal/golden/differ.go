// Package golden provides golden file testing for simulation decks.
package golden

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"moldyn/cmd/moldyntest/internal/normalize"
	"moldyn/cmd/moldyntest/shared"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Differ handles diff operations for golden file tests
type Differ struct {
	config     *shared.Config
	normalizer *normalize.Engine
}

// NewDiffer creates a new golden file differ
func NewDiffer(config *shared.Config) *Differ {
	return &Differ{
		config:     config,
		normalizer: normalize.NewEngine(),
	}
}

// ShowDiff displays the differences between expected and actual deck output
func (d *Differ) ShowDiff(testName string) error {
	return d.showDiff(testName, shared.RunDeck, ".expected", testName)
}

// ShowStdinDiff displays the differences for the stdin-mode variant
func (d *Differ) ShowStdinDiff(testName string) error {
	return d.showDiff(testName, shared.RunDeckStdin, ".stdin.expected", testName+" (stdin)")
}

func (d *Differ) showDiff(testName string, run func(string, string, int) (string, error), suffix, label string) error {
	deckPath := shared.FindDeck(testName, d.config.TestDir)
	if _, err := os.Stat(deckPath); os.IsNotExist(err) {
		return fmt.Errorf("test deck not found: %s", deckPath)
	}

	output, err := run(deckPath, d.config.EngineCmd, d.config.TestTimeout)
	if err != nil && d.config.Verbose {
		fmt.Printf("Engine exited with error: %v\nOutput: %s\n", err, output)
	}
	actualOutput := d.normalizer.NormalizeOutput(shared.CleanOutput(output))

	expectedPath := filepath.Join(d.config.TestDir, testName+suffix)
	expectedContent, err := os.ReadFile(expectedPath)
	if err != nil {
		return fmt.Errorf("failed to read expected file %s: %w", expectedPath, err)
	}
	expectedOutput := shared.CleanOutput(string(expectedContent))

	d.ShowDetailedDiff(expectedOutput, actualOutput, label)
	return nil
}

// ShowDetailedDiff displays a detailed comparison between expected and actual output
func (d *Differ) ShowDetailedDiff(expected, actual, testName string) {
	fmt.Printf("=== Test: %s ===\n", testName)

	if d.normalizer.CompareWithPlaceholders(expected, actual) {
		fmt.Println("No differences found - test passes!")
		return
	}

	fmt.Println("\n--- Expected ---")
	printNumberedLines(expected)

	fmt.Println("\n--- Actual ---")
	printNumberedLines(actual)

	fmt.Println("\n--- Diff ---")
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Printf("- %q\n", diff.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Printf("+ %q\n", diff.Text)
		case diffmatchpatch.DiffEqual:
			// Trim unchanged runs for readability.
			if len(diff.Text) > 50 {
				fmt.Printf("  %q...\n", diff.Text[:47])
			} else {
				fmt.Printf("  %q\n", diff.Text)
			}
		}
	}
}

// printNumberedLines prints lines with line numbers
func printNumberedLines(content string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		fmt.Printf("%4d→%s\n", i+1, line)
	}
}
