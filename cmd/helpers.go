package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadscore-cli/internal/batch"
	"github.com/sells-group/leadscore-cli/internal/config"
	"github.com/sells-group/leadscore-cli/internal/dedupe"
	"github.com/sells-group/leadscore-cli/internal/model"
	"github.com/sells-group/leadscore-cli/internal/scorer"
	"github.com/sells-group/leadscore-cli/internal/validate"
)

// engine bundles the components most commands need.
type engine struct {
	validator    *validate.Validator
	scorer       *scorer.Scorer
	orchestrator *batch.Orchestrator
	matcher      *dedupe.Matcher
}

// buildEngine assembles the engine from global config plus an optional
// weights file and concurrency override.
func buildEngine(weightsPath string, concurrency int) (*engine, error) {
	scoringCfg := scorer.Merge(scorer.DefaultConfig(), cfg.Scoring)

	if weightsPath != "" {
		override, err := config.LoadWeightsFile(weightsPath)
		if err != nil {
			return nil, err
		}
		scoringCfg = scorer.Merge(scoringCfg, override)
	}

	if err := scorer.ValidateConfig(scoringCfg); err != nil {
		return nil, err
	}

	v := validate.New(cfg.Validation)
	s := scorer.New(scoringCfg, v)

	if concurrency <= 0 {
		concurrency = cfg.Batch.Concurrency
	}

	return &engine{
		validator:    v,
		scorer:       s,
		orchestrator: batch.New(s, concurrency),
		matcher:      dedupe.NewMatcher(),
	}, nil
}

// addLeadFlags registers flags for entering a single lead on the command line.
func addLeadFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("company", "", "company name")
	f.String("contact", "", "contact name")
	f.String("email", "", "email address")
	f.String("phone", "", "phone number")
	f.String("industry", "", "industry")
	f.String("size", "", "company size (employee count or range)")
	f.String("revenue", "", "annual revenue")
	f.String("website", "", "website URL")
	f.String("linkedin", "", "LinkedIn URL")
}

func leadFromFlags(cmd *cobra.Command) model.Lead {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return model.Lead{
		CompanyName: get("company"),
		ContactName: get("contact"),
		Email:       get("email"),
		Phone:       get("phone"),
		Industry:    get("industry"),
		CompanySize: get("size"),
		Revenue:     get("revenue"),
		Website:     get("website"),
		LinkedIn:    get("linkedin"),
	}
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "create output file %s", path)
	}
	return f, func() { f.Close() }, nil
}

func printBreakdown(w *os.File, b model.Breakdown, recommendations []string, quality float64) {
	fmt.Fprintf(w, "Lead score:    %6.2f  [%s]\n", b.LeadScore, b.Priority)
	fmt.Fprintln(w, strings.Repeat("-", 32))
	fmt.Fprintf(w, "Company:       %6.2f\n", b.Company)
	fmt.Fprintf(w, "Contact:       %6.2f\n", b.Contact)
	fmt.Fprintf(w, "Completeness:  %6.2f\n", b.Completeness)
	fmt.Fprintf(w, "Engagement:    %6.2f\n", b.Engagement)
	fmt.Fprintf(w, "Data quality:  %6.2f\n", quality)

	if len(recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}
}

func printResultsTable(w *os.File, results []batch.Result) error {
	header := fmt.Sprintf("%-30s %-22s %-15s %7s %-8s\n",
		"Company", "Contact", "Industry", "Score", "Priority")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 86)); err != nil {
		return eris.Wrap(err, "write table separator")
	}

	for _, r := range results {
		name := r.Lead.CompanyName
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		line := fmt.Sprintf("%-30s %-22s %-15s %7.2f %-8s\n",
			name, r.Lead.ContactName, r.Lead.Industry, r.Breakdown.LeadScore, r.Breakdown.Priority)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "write table row")
		}
	}
	return nil
}

func printSummary(w *os.File, s batch.Summary) {
	fmt.Fprintf(w, "\n--- Summary ---\n")
	fmt.Fprintf(w, "Total:          %d\n", s.Total)
	fmt.Fprintf(w, "Scored:         %d\n", s.Scored)
	fmt.Fprintf(w, "Failed:         %d\n", s.Failed)
	fmt.Fprintf(w, "High priority:  %d\n", s.HighPriority)
	fmt.Fprintf(w, "Medium:         %d\n", s.MedPriority)
	fmt.Fprintf(w, "Low:            %d\n", s.LowPriority)
	fmt.Fprintf(w, "Average score:  %.2f\n", s.AverageScore)
}
