// Package main provides the moldyntest CLI for end-to-end testing of the
// MolDyn engine. moldyntest uses golden files to record, run, and verify
// the screen output produced by simulation decks.
package main

import (
	"os"

	"moldyn/cmd/moldyntest/internal/cli"
)

func main() {
	app := cli.NewApp()
	rootCmd := app.CreateRootCommand()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
