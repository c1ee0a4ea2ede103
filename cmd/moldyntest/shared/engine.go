// Package shared provides common utilities for moldyntest.
package shared

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// CheckEngineCommand verifies that the moldyn command is available
func CheckEngineCommand(engineCmd string) error {
	original := engineCmd

	// An explicit path is taken at face value.
	if original != DefaultEngineCmd {
		if filepath.IsAbs(original) {
			if _, err := os.Stat(original); err == nil {
				return nil
			}
			return fmt.Errorf("moldyn command not found at specified path: %s", original)
		}
		if filepath.Dir(original) != "." {
			absPath, err := filepath.Abs(original)
			if err == nil {
				if _, err := os.Stat(absPath); err == nil {
					return nil
				}
			}
			return fmt.Errorf("moldyn command not found at relative path: %s", original)
		}
	}

	// Try common locations for the engine binary.
	candidates := []string{
		"./bin/moldyn",
		"bin/moldyn",
		"moldyn",
	}
	if original != DefaultEngineCmd {
		candidates = append([]string{original}, candidates...)
	}

	for _, candidate := range candidates {
		if candidate == "moldyn" {
			if _, err := exec.LookPath(candidate); err == nil {
				return nil
			}
		} else {
			if _, err := os.Stat(candidate); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("moldyn command not found. Tried: %v", candidates)
}

// resolveEngineCommand picks the engine binary, preferring a local build
// over a PATH lookup.
func resolveEngineCommand(engineCmd string) string {
	if engineCmd != DefaultEngineCmd {
		return engineCmd
	}
	if _, err := os.Stat("./bin/moldyn"); err == nil {
		return "./bin/moldyn"
	}
	if _, err := os.Stat("bin/moldyn"); err == nil {
		return "bin/moldyn"
	}
	return engineCmd
}

// RunDeck executes a simulation deck through the engine and returns the
// combined screen and error output. The log stream is disabled so runs
// leave no files behind, and the logger is quieted so only engine output
// reaches the capture.
func RunDeck(deckPath, engineCmd string, timeoutSeconds int) (string, error) {
	if err := CheckEngineCommand(engineCmd); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, resolveEngineCommand(engineCmd),
		"-i", deckPath, "-l", "none")
	cmd.Env = append(os.Environ(), "MOLDYN_LOG_LEVEL=error")

	output, err := cmd.CombinedOutput()
	return string(output), err
}

// RunDeckStdin executes a simulation deck by piping it to the engine's
// standard input, the mode an engine started without -i runs in.
func RunDeckStdin(deckPath, engineCmd string, timeoutSeconds int) (string, error) {
	if err := CheckEngineCommand(engineCmd); err != nil {
		return "", err
	}

	content, err := os.ReadFile(deckPath)
	if err != nil {
		return "", fmt.Errorf("failed to read deck file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, resolveEngineCommand(engineCmd), "-l", "none")
	cmd.Env = append(os.Environ(), "MOLDYN_LOG_LEVEL=error")
	cmd.Stdin = bytes.NewReader(content)

	output, err := cmd.CombinedOutput()
	return string(output), err
}
