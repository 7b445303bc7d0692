package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadscore-cli/internal/ingest"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Find probable duplicate leads in a file",
	Long: `Compare every pair of leads by company name, email domain and
contact name and report groups above the similarity threshold.

Examples:
  leadscore dedupe --input leads.csv
  leadscore dedupe --input leads.xlsx --threshold 0.9 --format json`,
	RunE: runDedupe,
}

func init() {
	f := dedupeCmd.Flags()
	f.String("input", "", "input file (.csv or .xlsx)")
	f.Float64("threshold", 0, "similarity threshold in (0,1] (default from config)")
	f.String("format", "table", "output format: table or json")
	_ = dedupeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(dedupeCmd)
}

func runDedupe(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	format, _ := cmd.Flags().GetString("format")

	if format != "table" && format != "json" {
		return eris.Errorf("dedupe: --format must be table or json (got %q)", format)
	}
	if threshold == 0 {
		threshold = cfg.Dedupe.Threshold
	}
	if threshold < 0 || threshold > 1 {
		return eris.Errorf("dedupe: --threshold must be in (0,1] (got %v)", threshold)
	}

	eng, err := buildEngine("", 0)
	if err != nil {
		return err
	}

	leads, err := ingest.Read(input, ingest.AliasTable(cfg.Ingest.HeaderAliases))
	if err != nil {
		return err
	}

	groups := eng.matcher.FindDuplicates(leads, threshold)

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	}

	if len(groups) == 0 {
		fmt.Println("No duplicates found.")
		return nil
	}

	for i, g := range groups {
		fmt.Printf("Group %d (similarity %.4f):\n", i+1, g.Similarity)
		for _, lead := range g.Leads {
			marker := " "
			if lead.ID == g.Recommended.ID {
				marker = "*"
			}
			fmt.Printf("  %s %-30s %-25s %s\n", marker, lead.CompanyName, lead.ContactName, lead.Email)
		}
	}
	fmt.Printf("\n%d duplicate group(s); * marks the most complete record.\n", len(groups))
	return nil
}
