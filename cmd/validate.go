package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadscore-cli/internal/model"
	"github.com/sells-group/leadscore-cli/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate and standardize a single lead",
	Long: `Check each field of a lead, print what was normalized, which
fields failed, and the data quality score.

Examples:
  leadscore validate --email "JOHN@Example.COM " --phone "(555) 123-4567"
  leadscore validate --company "Acme Corp Inc." --industry tech --size "around 150 employees"
  leadscore validate --email info@gmail.com --format json`,
	RunE: runValidate,
}

func init() {
	addLeadFlags(validateCmd)
	f := validateCmd.Flags()
	f.String("format", "table", "output format: table or json")
	f.String("free-domains", "", "comma-separated extra domains treated as personal email hosts")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return eris.Errorf("validate: --format must be table or json (got %q)", format)
	}

	vcfg := cfg.Validation
	extraDomains, _ := cmd.Flags().GetString("free-domains")
	vcfg.FreeEmailDomains = append(vcfg.FreeEmailDomains, splitCommaList(extraDomains)...)

	v := validate.New(vcfg)
	report := v.Record(leadFromFlags(cmd))

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(os.Stdout, report)
	return nil
}

func printReport(w *os.File, report model.ValidationReport) {
	fmt.Fprintf(w, "%-14s %-7s %-30s %s\n", "Field", "Valid", "Normalized", "Notes")
	fmt.Fprintln(w, "--------------------------------------------------------------------------")

	for _, key := range append(model.RequiredFields, model.OptionalFields...) {
		res, ok := report.Fields[key]
		if !ok {
			continue
		}
		notes := res.Reason
		for _, warn := range res.Warnings {
			if notes != "" {
				notes += ", "
			}
			notes += warn
		}
		normalized := res.Normalized
		if len(normalized) > 30 {
			normalized = normalized[:27] + "..."
		}
		fmt.Fprintf(w, "%-14s %-7v %-30s %s\n", key, res.Valid, normalized, notes)
	}

	fmt.Fprintf(w, "\nData quality score: %.2f\n", report.QualityScore)
}
