package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"toolctl/internal/aicli"
	"toolctl/internal/detect"
)

var (
	aiLsJSON    bool
	aiLsRefresh bool
)

func init() {
	aiCmd.AddCommand(aiLsCmd)
	aiLsCmd.Flags().BoolVar(&aiLsJSON, "json", false, "output JSON")
	aiLsCmd.Flags().BoolVar(&aiLsRefresh, "refresh", false, "ignore cached results and re-probe")
}

var aiLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List AI CLI tools and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession()
		mgr := aicli.NewManager(s.engine, s.runner)
		tools := mgr.List(cmd.Context(), aiLsRefresh)

		if aiLsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tools)
		}

		for _, t := range tools {
			var line strings.Builder
			if t.Installed {
				line.WriteString(okStyle.Render("✓") + " ")
			} else {
				line.WriteString(missStyle.Render("✗") + " ")
			}
			line.WriteString(fmt.Sprintf("%-18s", t.Name))
			if t.Installed {
				ver := t.Version
				if ver == "" {
					ver = "?"
				}
				if t.Latest != "" && detect.VersionLess(ver, t.Latest) {
					line.WriteString(fmt.Sprintf(" %s → %s", ver, warnStyle.Render(t.Latest+" available")))
				} else {
					line.WriteString(" " + ver)
				}
			} else {
				line.WriteString(" " + missStyle.Render("not installed"))
			}
			line.WriteString("  " + missStyle.Render(t.Provider))
			fmt.Println(line.String())
			for _, cf := range t.ConfigFiles {
				if cf.Exists {
					fmt.Printf("    config: %s\n", cf.Path)
				}
			}
		}
		return nil
	},
}
