// Package golden provides golden file testing for simulation decks.
package golden

import (
	"fmt"
	"os"
	"path/filepath"

	"moldyn/cmd/moldyntest/internal/normalize"
	"moldyn/cmd/moldyntest/shared"
)

// Runner handles running golden file tests
type Runner struct {
	config     *shared.Config
	normalizer *normalize.Engine
}

// NewRunner creates a new golden file test runner
func NewRunner(config *shared.Config) *Runner {
	return &Runner{
		config:     config,
		normalizer: normalize.NewEngine(),
	}
}

// RunTest runs one deck and compares its output with the expected golden file
func (r *Runner) RunTest(testName string) error {
	return r.runTest(testName, shared.RunDeck, ".expected")
}

// RunStdinTest runs one deck through the engine's standard input and
// compares its output with the stdin-mode golden file
func (r *Runner) RunStdinTest(testName string) error {
	return r.runTest(testName, shared.RunDeckStdin, ".stdin.expected")
}

func (r *Runner) runTest(testName string, run func(string, string, int) (string, error), suffix string) error {
	if r.config.Verbose {
		fmt.Printf("Running test: %s\n", testName)
	}

	deckPath := shared.FindDeck(testName, r.config.TestDir)
	if _, err := os.Stat(deckPath); os.IsNotExist(err) {
		return fmt.Errorf("test deck not found: %s", deckPath)
	}

	output, err := run(deckPath, r.config.EngineCmd, r.config.TestTimeout)
	if err != nil && r.config.Verbose {
		// Error decks exit non-zero on purpose; the captured output is
		// still what gets compared.
		fmt.Printf("Engine exited with error: %v\nOutput: %s\n", err, output)
	}

	actualOutput := r.cleanOutput(output)

	expectedPath := filepath.Join(r.config.TestDir, testName+suffix)
	expectedContent, err := os.ReadFile(expectedPath)
	if err != nil {
		return fmt.Errorf("failed to read expected file %s: %w", expectedPath, err)
	}
	expectedOutput := shared.CleanOutput(string(expectedContent))

	if !r.normalizer.CompareWithPlaceholders(expectedOutput, actualOutput) {
		return fmt.Errorf("test failed: output doesn't match expected")
	}

	if r.config.Verbose {
		fmt.Printf("Test passed: %s\n", testName)
	}

	return nil
}

// RunAllTests runs every deck in the test directory
func (r *Runner) RunAllTests() error {
	tests, err := shared.FindAllDecks(r.config.TestDir)
	if err != nil {
		return fmt.Errorf("failed to find tests: %w", err)
	}

	var failedTests []string
	passedTests := 0

	for _, test := range tests {
		if err := r.RunTest(test); err != nil {
			failedTests = append(failedTests, test)
			fmt.Printf("FAIL %s: %v\n", test, err)
		} else {
			passedTests++
			fmt.Printf("PASS %s\n", test)
		}
	}

	fmt.Printf("\nResults: %d passed, %d failed\n", passedTests, len(failedTests))

	if len(failedTests) > 0 {
		return fmt.Errorf("tests failed: %v", failedTests)
	}

	return nil
}

// cleanOutput normalizes output for comparison
func (r *Runner) cleanOutput(output string) string {
	return r.normalizer.NormalizeOutput(shared.CleanOutput(output))
}
