// Package cli provides command-line interface setup for moldyntest.
package cli

import (
	"moldyn/cmd/moldyntest/internal/golden"

	"github.com/spf13/cobra"
)

// addGoldenFileCommands adds the deck golden file testing commands
func (app *App) addGoldenFileCommands(rootCmd *cobra.Command) {
	recordCmd := &cobra.Command{
		Use:   "record <testname>",
		Short: "Record a new deck test case",
		Long: `Record a new test case by running a simulation deck and capturing its
screen output. The output is saved as a golden file for future comparisons.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			recorder := golden.NewRecorder(app.Config)
			return recorder.RecordTest(args[0])
		},
	}

	runCmd := &cobra.Command{
		Use:   "run <testname>",
		Short: "Run a specific deck test case",
		Long: `Run a deck test case and compare its output with the expected golden file.
Returns exit code 0 if the test passes, non-zero if it fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			runner := golden.NewRunner(app.Config)
			return runner.RunTest(args[0])
		},
	}

	runAllCmd := &cobra.Command{
		Use:   "run-all",
		Short: "Run all deck test cases",
		Long: `Run every deck in the test directory and report the results.
Returns exit code 0 if all tests pass, non-zero if any fail.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			runner := golden.NewRunner(app.Config)
			return runner.RunAllTests()
		},
	}

	acceptCmd := &cobra.Command{
		Use:   "accept <testname>",
		Short: "Accept current deck output as golden",
		Long: `Update the golden file for a deck test case with the current output.
Use this after verifying that the new behavior is correct.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			recorder := golden.NewRecorder(app.Config)
			return recorder.AcceptTest(args[0])
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff <testname>",
		Short: "Show differences between expected and actual deck output",
		Long: `Show detailed differences between the expected golden file output
and the actual output from running the deck.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			differ := golden.NewDiffer(app.Config)
			return differ.ShowDiff(args[0])
		},
	}

	rootCmd.AddCommand(recordCmd, runCmd, runAllCmd, acceptCmd, diffCmd)
}

// addStdinCommands adds the stdin-mode variants, which pipe the deck to
// the engine instead of naming it with -i
func (app *App) addStdinCommands(rootCmd *cobra.Command) {
	recordStdinCmd := &cobra.Command{
		Use:   "record-stdin <testname>",
		Short: "Record a deck test case in stdin mode",
		Long: `Record a test case by piping the deck to the engine's standard input
and capturing the output. Error positions differ from file mode because the
engine reports the source as stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			recorder := golden.NewRecorder(app.Config)
			return recorder.RecordStdinTest(args[0])
		},
	}

	runStdinCmd := &cobra.Command{
		Use:   "run-stdin <testname>",
		Short: "Run a deck test case in stdin mode",
		Long: `Run a deck test case in stdin mode and compare its output with the
stdin-mode golden file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			runner := golden.NewRunner(app.Config)
			return runner.RunStdinTest(args[0])
		},
	}

	diffStdinCmd := &cobra.Command{
		Use:   "diff-stdin <testname>",
		Short: "Show differences for a stdin-mode deck test case",
		Long: `Show detailed differences between the stdin-mode golden file and the
actual output from piping the deck to the engine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			differ := golden.NewDiffer(app.Config)
			return differ.ShowStdinDiff(args[0])
		},
	}

	rootCmd.AddCommand(recordStdinCmd, runStdinCmd, diffStdinCmd)
}
