// Package export writes scored leads to CSV or XLSX files.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/leadscore-cli/internal/batch"
)

var columns = []string{
	"company_name", "contact_name", "email", "phone", "industry",
	"company_size", "revenue", "website", "linkedin",
	"lead_score", "priority", "company_score", "contact_score",
	"completeness_score", "engagement_score", "data_quality_score",
	"recommendations",
}

// WriteCSV writes batch results in header-first CSV form.
func WriteCSV(w io.Writer, results []batch.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return eris.Wrap(err, "export: write CSV header")
	}
	for _, r := range results {
		if err := cw.Write(resultRow(r)); err != nil {
			return eris.Wrap(err, "export: write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush CSV")
	}
	return nil
}

// WriteXLSX writes batch results to a single-sheet workbook at path.
func WriteXLSX(path string, results []batch.Result) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Scored Leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range columns {
		header.AddCell().SetString(col)
	}
	for _, r := range results {
		row := sheet.AddRow()
		for _, v := range resultRow(r) {
			row.AddCell().SetString(v)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save XLSX")
	}
	zap.L().Info("export: workbook written", zap.String("path", path), zap.Int("rows", len(results)))
	return nil
}

// WriteFile dispatches on the file extension. Anything not ending in .xlsx
// is written as CSV.
func WriteFile(path string, results []batch.Result) error {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WriteXLSX(path, results)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	if err := WriteCSV(f, results); err != nil {
		return err
	}
	zap.L().Info("export: CSV written", zap.String("path", path), zap.Int("rows", len(results)))
	return nil
}

func resultRow(r batch.Result) []string {
	return []string{
		r.Lead.CompanyName,
		r.Lead.ContactName,
		r.Lead.Email,
		r.Lead.Phone,
		r.Lead.Industry,
		r.Lead.CompanySize,
		r.Lead.Revenue,
		r.Lead.Website,
		r.Lead.LinkedIn,
		formatScore(r.Breakdown.LeadScore),
		string(r.Breakdown.Priority),
		formatScore(r.Breakdown.Company),
		formatScore(r.Breakdown.Contact),
		formatScore(r.Breakdown.Completeness),
		formatScore(r.Breakdown.Engagement),
		formatScore(r.QualityScore),
		strings.Join(r.Recommendations, "; "),
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
