package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/leadscore-cli/internal/ingest"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Score the built-in demo leads",
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := buildEngine("", 0)
		if err != nil {
			return err
		}

		out := eng.orchestrator.RunLeads(cmd.Context(), ingest.SampleLeads())

		format, _ := cmd.Flags().GetString("format")
		if format == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if err := printResultsTable(os.Stdout, out.Results); err != nil {
			return err
		}
		printSummary(os.Stdout, out.Summary)
		return nil
	},
}

func init() {
	sampleCmd.Flags().String("format", "table", "output format: table or json")
	rootCmd.AddCommand(sampleCmd)
}
