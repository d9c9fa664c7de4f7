package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "toolctl",
	Short: "toolctl – developer toolchain inspector",
	Long:  "toolctl detects installed toolchains, runtimes and package managers, and manages AI dev CLIs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: full inventory
		return runLs(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
