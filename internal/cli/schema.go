package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolctl/internal/schema"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the detection report",
	Long:  "Prints the JSON Schema for the `ls --json` report document, for hosts that persist detection results and want to validate them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := schema.MarshalSchema(schema.ReportSchema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
