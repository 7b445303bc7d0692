package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadscore-cli/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single lead",
	Long: `Score one lead entered on the command line and print its 0-100
score, priority tier and follow-up recommendations.

Examples:
  # Score a fully specified lead
  leadscore score --company "TechCorp Solutions" --contact "John Smith" \
    --email john.smith@techcorp.com --phone "+1-555-123-4567" \
    --industry Technology --size 51-200 --revenue 10M-50M \
    --website https://techcorp.com --linkedin https://linkedin.com/company/techcorp

  # Minimal lead, JSON output
  leadscore score --company StartupXYZ --email mike@startupxyz.io --format json

  # Lead from a JSON file
  leadscore score --json lead.json`,
	RunE: runScore,
}

func init() {
	addLeadFlags(scoreCmd)
	f := scoreCmd.Flags()
	f.String("json", "", "read the lead from a JSON file instead of flags")
	f.String("weights", "", "YAML weights file overriding scoring config")
	f.String("format", "table", "output format: table or json")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return eris.Errorf("score: --format must be table or json (got %q)", format)
	}

	weights, _ := cmd.Flags().GetString("weights")
	eng, err := buildEngine(weights, 0)
	if err != nil {
		return err
	}

	lead := leadFromFlags(cmd)
	if jsonPath, _ := cmd.Flags().GetString("json"); jsonPath != "" {
		lead, err = leadFromJSONFile(jsonPath)
		if err != nil {
			return err
		}
	}

	breakdown, report := eng.scorer.ScoreWithReport(lead)
	recs := eng.scorer.Recommend(breakdown, lead)

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"lead":               report.Cleaned,
			"breakdown":          breakdown,
			"recommendations":    recs,
			"data_quality_score": report.QualityScore,
		})
	}

	printBreakdown(os.Stdout, breakdown, recs, report.QualityScore)
	return nil
}

func leadFromJSONFile(path string) (model.Lead, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Lead{}, eris.Wrapf(err, "score: read lead file %s", path)
	}
	var raw model.RawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Lead{}, eris.Wrapf(err, "score: parse lead file %s", path)
	}
	return model.LeadFromRaw(raw)
}
