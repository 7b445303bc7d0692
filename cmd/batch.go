package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadscore-cli/internal/export"
	"github.com/sells-group/leadscore-cli/internal/ingest"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a file of leads",
	Long: `Read leads from a CSV or XLSX file, score each one and write the
results. Input headers are matched against common CRM column names.

Examples:
  # Score a CSV export, print a table
  leadscore batch --input leads.csv

  # Write scored results to a workbook
  leadscore batch --input leads.csv --output scored.xlsx

  # Custom weights and higher concurrency
  leadscore batch --input leads.xlsx --weights weights.yaml --concurrency 8`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.String("input", "", "input file (.csv or .xlsx)")
	f.String("output", "", "output file (.csv or .xlsx); default prints a table")
	f.String("format", "table", "stdout format when --output is unset: table or json")
	f.String("weights", "", "YAML weights file overriding scoring config")
	f.Int("concurrency", 0, "worker count (default from config)")
	_ = batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	weights, _ := cmd.Flags().GetString("weights")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	if format != "table" && format != "json" {
		return eris.Errorf("batch: --format must be table or json (got %q)", format)
	}

	eng, err := buildEngine(weights, concurrency)
	if err != nil {
		return err
	}

	leads, err := ingest.Read(input, ingest.AliasTable(cfg.Ingest.HeaderAliases))
	if err != nil {
		return err
	}
	if len(leads) == 0 {
		return eris.Errorf("batch: no leads found in %s", input)
	}

	log := zap.L().With(zap.String("command", "batch"))
	log.Info("scoring leads", zap.String("input", input), zap.Int("count", len(leads)))

	out := eng.orchestrator.RunLeads(ctx, leads)

	if output != "" {
		if err := export.WriteFile(output, out.Results); err != nil {
			return err
		}
		printSummary(os.Stdout, out.Summary)
		return nil
	}

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
}

// splitCommaList is shared by flag parsers that accept comma-separated values.
func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
