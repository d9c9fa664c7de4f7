package cli

import (
	"github.com/spf13/cobra"

	"toolctl/internal/aicli"
	"toolctl/internal/system"
)

func init() {
	aiCmd.AddCommand(aiInstallCmd, aiUpdateCmd, aiUninstallCmd)
}

var aiInstallCmd = &cobra.Command{
	Use:   "install <id>",
	Short: "Install an AI CLI tool via its package manager",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()
		mgr := aicli.NewManager(s.engine, s.runner)
		if err := mgr.Install(cmd.Context(), args[0]); err != nil {
			return err
		}
		system.Logger.Info("installed", "tool", args[0])
		return nil
	},
}

var aiUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an AI CLI tool via its package manager",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()
		mgr := aicli.NewManager(s.engine, s.runner)
		if err := mgr.Update(cmd.Context(), args[0]); err != nil {
			return err
		}
		system.Logger.Info("updated", "tool", args[0])
		return nil
	},
}

var aiUninstallCmd = &cobra.Command{
	Use:   "uninstall <id>",
	Short: "Uninstall an AI CLI tool via its package manager",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()
		mgr := aicli.NewManager(s.engine, s.runner)
		if err := mgr.Uninstall(cmd.Context(), args[0]); err != nil {
			return err
		}
		system.Logger.Info("uninstalled", "tool", args[0])
		return nil
	},
}
