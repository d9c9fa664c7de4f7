package cli

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(aiCmd)
}

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Manage AI coding-assistant CLIs",
	Long:  "Inventory, install, update and uninstall AI coding-assistant CLI tools (Claude Code, Codex, Gemini CLI, Aider, ...).",
}
