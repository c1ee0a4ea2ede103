// Package main provides the MolDyn simulation engine entry point.
// MolDyn reads a simulation deck and drives it through a modular engine
// whose capabilities depend on the packages compiled into the build.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"moldyn/internal/docs"
	"moldyn/internal/engine"
	"moldyn/internal/logger"
	"moldyn/internal/version"
	"moldyn/pkg/simtypes"
)

var (
	logLevel string
	logFile  string
	testMode bool
	infoYAML bool
)

// rootCmd runs the engine. The engine grammar is positional single-dash
// flags, so cobra flag parsing is disabled and the argument vector is
// handed over verbatim.
var rootCmd = &cobra.Command{
	Use:   "moldyn",
	Short: "MolDyn - Modular Atomic/Molecular Dynamics Simulator",
	Long: `MolDyn is a modular molecular dynamics engine. Styles live in packages
compiled into the build; accelerator packages add suffixed style variants
selected with -sf and configured with -pk.`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runEngine,
}

// versionCmd prints the build's version line.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of MolDyn, including git metadata when present.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

// infoCmd bootstraps a silent engine and prints its configuration.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the engine configuration summary",
	Long:  `Bootstrap an engine with default settings and print its configuration.`,
	RunE:  runInfo,
}

// docCmd renders an embedded reference topic.
var docCmd = &cobra.Command{
	Use:   "doc [topic]",
	Short: "Show reference documentation for a topic",
	Long:  `Render an embedded documentation topic. Without a topic, list the available ones.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDoc,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	infoCmd.Flags().BoolVar(&infoYAML, "yaml", false, "Print the full configuration as YAML")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("test-mode", rootCmd.PersistentFlags().Lookup("test-mode")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding test-mode flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("info-yaml", infoCmd.Flags().Lookup("yaml")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding yaml flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(docCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runEngine(_ *cobra.Command, args []string) error {
	argv := append([]string{os.Args[0]}, args...)

	eng, err := engine.New(argv, simtypes.SelfCommunicator())
	if err != nil {
		return err
	}
	if eng.State() == engine.StateHelpOnly {
		return eng.Close()
	}

	runErr := eng.Run()
	closeErr := eng.Close()
	if runErr != nil {
		return runErr
	}
	return closeErr
}

func runInfo(cmd *cobra.Command, _ []string) error {
	eng, err := engine.New([]string{"moldyn", "-l", "none", "-sc", "none"},
		simtypes.SelfCommunicator())
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	if infoYAML {
		text, err := eng.InfoYAML()
		if err != nil {
			return err
		}
		cmd.Print(text)
		return nil
	}

	info, err := eng.Info()
	if err != nil {
		return err
	}
	cmd.Printf("%s %s\n", version.ProductName, version.Short())
	cmd.Printf("backend: %s, threads: %d\n", info.Backend, info.Threads)
	cmd.Printf("installed packages (%d):\n", len(info.Installed))
	for _, name := range info.Installed {
		cmd.Printf("  %s\n", name)
	}
	return nil
}

func runDoc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		cmd.Println("Available topics:")
		for _, topic := range docs.Topics() {
			cmd.Printf("  %s\n", topic)
		}
		return nil
	}
	rendered, err := docs.Render(args[0])
	if err != nil {
		return err
	}
	cmd.Print(rendered)
	return nil
}
