package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	detectJSON    bool
	detectRefresh bool
)

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "output JSON")
	detectCmd.Flags().BoolVar(&detectRefresh, "refresh", false, "ignore the cached result and re-probe")
}

var detectCmd = &cobra.Command{
	Use:   "detect <tool>",
	Short: "Detect a single tool",
	Long:  "Detects one tool by name. Synonyms resolve to the canonical tool (nodejs → node); unknown names are probed generically with --version.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()
		info := s.engine.DetectTool(cmd.Context(), args[0], detectRefresh)

		if detectJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		if !info.Installed {
			fmt.Printf("%s %s: %s\n", missStyle.Render("✗"), info.DisplayName, info.ErrorReason)
			return nil
		}
		fmt.Printf("%s %s\n", okStyle.Render("✓"), info.DisplayName)
		if info.Version != "" {
			fmt.Printf("  version: %s\n", info.Version)
		}
		if info.Path != "" {
			fmt.Printf("  path:    %s\n", info.Path)
		}
		fmt.Printf("  install: %s\n", info.InstallMethod)
		fmt.Printf("  kind:    %s\n", info.Category)
		return nil
	},
}
