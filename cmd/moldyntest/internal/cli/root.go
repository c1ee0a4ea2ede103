// Package cli provides command-line interface setup for moldyntest.
package cli

import (
	"moldyn/cmd/moldyntest/internal/normalize"
	"moldyn/cmd/moldyntest/shared"

	"github.com/spf13/cobra"
)

// App represents the moldyntest CLI application
type App struct {
	Config     *shared.Config
	Normalizer *normalize.Engine
}

// NewApp creates a new moldyntest CLI application
func NewApp() *App {
	return &App{
		Config:     shared.NewConfig(),
		Normalizer: normalize.NewEngine(),
	}
}

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "moldyntest",
		Short: "End-to-end testing tool for the MolDyn engine",
		Long: `moldyntest is a testing tool for the MolDyn engine that uses golden files
to verify the screen output of simulation decks. It can record, run, and
verify deck test cases in both file and stdin input modes.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.Config.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&app.Config.TestDir, "test-dir", shared.DefaultTestDir, "Test directory")
	rootCmd.PersistentFlags().StringVar(&app.Config.EngineCmd, "engine-cmd", shared.DefaultEngineCmd, "Engine command to test (will try ./bin/moldyn, then PATH)")
	rootCmd.PersistentFlags().IntVar(&app.Config.TestTimeout, "timeout", shared.DefaultTestTimeout, "Test timeout in seconds")

	app.addGoldenFileCommands(rootCmd)
	app.addStdinCommands(rootCmd)
	app.addVersionCommand(rootCmd)

	return rootCmd
}
