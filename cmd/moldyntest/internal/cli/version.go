// Package cli provides command-line interface setup for moldyntest.
package cli

import (
	"fmt"

	"moldyn/internal/version"

	"github.com/spf13/cobra"
)

// addVersionCommand adds the version command
func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the version of moldyntest, which tracks the engine version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			detailed, _ := cmd.Flags().GetBool("detailed")
			if detailed {
				fmt.Printf("moldyntest %s\n", version.GetFormattedVersion())
			} else {
				fmt.Printf("moldyntest v%s\n", version.GetVersion())
			}
		},
	}

	versionCmd.Flags().Bool("detailed", false, "Show detailed version information")
	rootCmd.AddCommand(versionCmd)
}
