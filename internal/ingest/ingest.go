// Package ingest loads lead records from CSV and XLSX files. Input headers
// are matched against a canonical alias table so exports from different CRM
// systems map onto the same field set.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/leadscore-cli/internal/model"
)

// DefaultAliases maps normalized header names to canonical lead fields.
// Keys are lowercase with spaces, dashes and dots squashed to underscores.
var DefaultAliases = map[string]string{
	"company_name":     model.FieldCompanyName,
	"company":          model.FieldCompanyName,
	"account_name":     model.FieldCompanyName,
	"organization":     model.FieldCompanyName,
	"contact_name":     model.FieldContactName,
	"contact":          model.FieldContactName,
	"name":             model.FieldContactName,
	"full_name":        model.FieldContactName,
	"email":            model.FieldEmail,
	"email_address":    model.FieldEmail,
	"work_email":       model.FieldEmail,
	"phone":            model.FieldPhone,
	"phone_number":     model.FieldPhone,
	"telephone":        model.FieldPhone,
	"mobile":           model.FieldPhone,
	"industry":         model.FieldIndustry,
	"sector":           model.FieldIndustry,
	"vertical":         model.FieldIndustry,
	"company_size":     model.FieldCompanySize,
	"size":             model.FieldCompanySize,
	"employees":        model.FieldCompanySize,
	"employee_count":   model.FieldCompanySize,
	"headcount":        model.FieldCompanySize,
	"revenue":          model.FieldRevenue,
	"annual_revenue":   model.FieldRevenue,
	"website":          model.FieldWebsite,
	"url":              model.FieldWebsite,
	"web_site":         model.FieldWebsite,
	"domain":           model.FieldWebsite,
	"linkedin":         model.FieldLinkedIn,
	"linkedin_url":     model.FieldLinkedIn,
	"linkedin_profile": model.FieldLinkedIn,
}

// AliasTable builds a header lookup from custom aliases merged over the
// built-in defaults. overrides maps canonical field keys to the column
// headers that should resolve to them; custom entries win on collision.
func AliasTable(overrides map[string][]string) map[string]string {
	table := make(map[string]string, len(DefaultAliases))
	for alias, field := range DefaultAliases {
		table[alias] = field
	}
	for field, headers := range overrides {
		for _, h := range headers {
			table[normalizeHeader(h)] = field
		}
	}
	return table
}

// ReadCSV parses a CSV file into leads. The first row is treated as the
// header; unrecognized columns are ignored. A nil alias table falls back
// to DefaultAliases.
func ReadCSV(path string, aliases map[string]string) ([]model.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open CSV")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read CSV header")
	}
	cols := mapHeader(header, aliases)

	var leads []model.Lead
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "ingest: read CSV row")
		}
		if lead, ok := rowToLead(cols, row); ok {
			leads = append(leads, lead)
		}
	}

	zap.L().Debug("ingest: CSV loaded", zap.String("path", path), zap.Int("leads", len(leads)))
	return leads, nil
}

// ReadXLSX parses the first sheet of an XLSX workbook into leads.
func ReadXLSX(path string, aliases map[string]string) ([]model.Lead, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open XLSX")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("ingest: workbook has no sheets")
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.New("ingest: sheet is empty")
	}

	cols := mapHeader(rowToStrings(sheet.Rows[0]), aliases)

	var leads []model.Lead
	for _, row := range sheet.Rows[1:] {
		if lead, ok := rowToLead(cols, rowToStrings(row)); ok {
			leads = append(leads, lead)
		}
	}

	zap.L().Debug("ingest: XLSX loaded", zap.String("path", path), zap.Int("leads", len(leads)))
	return leads, nil
}

// Read dispatches on the file extension. Anything not ending in .xlsx is
// treated as CSV.
func Read(path string, aliases map[string]string) ([]model.Lead, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return ReadXLSX(path, aliases)
	}
	return ReadCSV(path, aliases)
}

// mapHeader resolves each column to a canonical field key, or "" when the
// column is unknown.
func mapHeader(header []string, aliases map[string]string) []string {
	if aliases == nil {
		aliases = DefaultAliases
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = aliases[normalizeHeader(h)]
	}
	return cols
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimPrefix(h, "\ufeff")
	for _, sep := range []string{" ", "-", "."} {
		h = strings.ReplaceAll(h, sep, "_")
	}
	for strings.Contains(h, "__") {
		h = strings.ReplaceAll(h, "__", "_")
	}
	return h
}

// rowToLead builds a lead from one data row. Rows with no recognized
// non-empty cell report ok=false and are skipped.
func rowToLead(cols []string, row []string) (model.Lead, bool) {
	var lead model.Lead
	filled := false
	for i, field := range cols {
		if field == "" || i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			lead.SetField(field, v)
			filled = true
		}
	}
	if !filled {
		return model.Lead{}, false
	}
	lead.ID = uuid.NewString()
	return lead, true
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
