package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolctl/internal/system"
)

var uninstallDryRun bool

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().BoolVar(&uninstallDryRun, "dry-run", false, "show the resolved command without executing it")
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <tool>",
	Short: "Uninstall a tool using its vetted platform command",
	Long:  "Resolves the uninstall command for the tool on this platform and runs it. Combinations without a vetted command are refused; nothing is ever guessed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()
		name := args[0]

		info := s.engine.UninstallInfoFor(name)
		if !info.CanUninstall {
			fmt.Printf("%s %s\n", missStyle.Render("✗"), info.ManualInstructions)
			return fmt.Errorf("no automated uninstall for %q", name)
		}
		if info.Warning != "" {
			fmt.Println(warnStyle.Render("warning: " + info.Warning))
		}
		fmt.Printf("command: %s\n", info.Command)
		if uninstallDryRun {
			return nil
		}

		res := s.engine.UninstallTool(cmd.Context(), name)
		if !res.Success {
			return fmt.Errorf("uninstall failed: %s", res.Err)
		}
		system.Logger.Info("uninstalled", "tool", name, "command", res.Command)
		return nil
	},
}
