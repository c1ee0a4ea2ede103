// Package golden provides golden file testing for simulation decks.
package golden

import (
	"fmt"
	"os"
	"path/filepath"

	"moldyn/cmd/moldyntest/internal/normalize"
	"moldyn/cmd/moldyntest/shared"
)

// Recorder handles recording golden file test cases
type Recorder struct {
	config     *shared.Config
	normalizer *normalize.Engine
}

// NewRecorder creates a new golden file test recorder
func NewRecorder(config *shared.Config) *Recorder {
	return &Recorder{
		config:     config,
		normalizer: normalize.NewEngine(),
	}
}

// RecordTest records a test case by running a deck and saving its output
func (r *Recorder) RecordTest(testName string) error {
	return r.recordTest(testName, shared.RunDeck, ".expected")
}

// RecordStdinTest records a test case by piping a deck to the engine's
// standard input and saving its output
func (r *Recorder) RecordStdinTest(testName string) error {
	return r.recordTest(testName, shared.RunDeckStdin, ".stdin.expected")
}

// AcceptTest updates the golden file for a test case with current output
func (r *Recorder) AcceptTest(testName string) error {
	return r.RecordTest(testName)
}

func (r *Recorder) recordTest(testName string, run func(string, string, int) (string, error), suffix string) error {
	if r.config.Verbose {
		fmt.Printf("Recording test: %s\n", testName)
	}

	deckPath := shared.FindDeck(testName, r.config.TestDir)
	if _, err := os.Stat(deckPath); os.IsNotExist(err) {
		return fmt.Errorf("test deck not found: %s", deckPath)
	}

	output, err := run(deckPath, r.config.EngineCmd, r.config.TestTimeout)
	if err != nil && r.config.Verbose {
		fmt.Printf("Engine exited with error: %v\nOutput: %s\n", err, output)
	}

	cleanedOutput := r.normalizer.NormalizeOutput(shared.CleanOutput(output))

	expectedPath := filepath.Join(r.config.TestDir, testName+suffix)
	if err := os.WriteFile(expectedPath, []byte(cleanedOutput+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write expected file: %w", err)
	}

	if r.config.Verbose {
		fmt.Printf("Recorded expected output for test: %s\n", testName)
	}

	return nil
}
