package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"toolctl/internal/schema"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var (
	lsJSON    bool
	lsRefresh bool
)

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "output JSON report")
	lsCmd.Flags().BoolVar(&lsRefresh, "refresh", false, "ignore cached results and re-probe")
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Detect all known tools and print the inventory",
	Long:  "Probes every registered tool (runtimes, package managers, cloud CLIs, dev tools) and prints per-tool status plus a batch summary.",
	RunE:  runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	s := newSession()
	if lsRefresh {
		s.engine.InvalidateCache()
	}
	tools, sum := s.engine.DetectAllWithSummary(cmd.Context())

	if lsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(schema.Report{Tools: tools, Summary: sum})
	}

	for _, t := range tools {
		if !t.Installed {
			fmt.Printf("%s %-18s %s\n", missStyle.Render("✗"), t.DisplayName, missStyle.Render(t.ErrorReason))
			continue
		}
		ver := t.Version
		if ver == "" {
			ver = "?"
		}
		fmt.Printf("%s %-18s %-12s %-10s %s\n", okStyle.Render("✓"), t.DisplayName, ver, t.InstallMethod, t.Path)
	}
	fmt.Printf("\nSummary: %d tool(s), %d installed, %d missing, %s\n",
		sum.TotalTools, sum.SuccessCount, sum.FailureCount,
		time.Duration(sum.TotalTimeMs)*time.Millisecond)
	for _, e := range sum.Errors {
		fmt.Printf("  %s %s: %s\n", warnStyle.Render("!"), e.Tool, e.Reason)
	}
	return nil
}
