package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadscore-cli/internal/model"
)

func TestRecord(t *testing.T) {
	v := newTestValidator()

	t.Run("full record cleans and scores 100", func(t *testing.T) {
		lead := model.Lead{
			ID:          "lead-1",
			CompanyName: "TechCorp Solutions",
			ContactName: "john smith",
			Email:       "John.Smith@TechCorp.com",
			Phone:       "(650) 253-0000",
			Industry:    "tech",
			CompanySize: "150 employees",
			Revenue:     "$25M",
			Website:     "techcorp.com",
			LinkedIn:    "https://linkedin.com/company/techcorp",
		}

		report := v.Record(lead)

		assert.Equal(t, "lead-1", report.Cleaned.ID)
		assert.Equal(t, "TechCorp Solutions", report.Cleaned.CompanyName)
		assert.Equal(t, "John Smith", report.Cleaned.ContactName)
		assert.Equal(t, "john.smith@techcorp.com", report.Cleaned.Email)
		assert.Equal(t, "+16502530000", report.Cleaned.Phone)
		assert.Equal(t, "Technology", report.Cleaned.Industry)
		assert.Equal(t, "51-200", report.Cleaned.CompanySize)
		assert.Equal(t, "10M-50M", report.Cleaned.Revenue)
		assert.Equal(t, "https://techcorp.com", report.Cleaned.Website)

		for key, res := range report.Fields {
			assert.True(t, res.Valid, "field %s should be valid", key)
		}
		assert.InDelta(t, 100.0, report.QualityScore, 0.001)
	})

	t.Run("empty record scores zero", func(t *testing.T) {
		report := v.Record(model.Lead{})
		assert.Zero(t, report.QualityScore)
		assert.False(t, report.FieldValid(model.FieldEmail))
		assert.Equal(t, model.ReasonEmpty, report.Fields[model.FieldEmail].Reason)
	})

	t.Run("invalid email drops its quality share", func(t *testing.T) {
		report := v.Record(model.Lead{
			CompanyName: "Acme",
			Email:       "broken-address",
		})
		// company_name 0.15 counts on presence; email 0.25 requires validity.
		assert.InDelta(t, 15.0, report.QualityScore, 0.001)
		require.False(t, report.FieldValid(model.FieldEmail))
		assert.Equal(t, "broken-address", report.Fields[model.FieldEmail].Normalized)
	})

	t.Run("input lead is not mutated", func(t *testing.T) {
		lead := model.Lead{CompanyName: "  Messy   Name  Inc. ", Email: "UPPER@CASE.COM"}
		_ = v.Record(lead)
		assert.Equal(t, "  Messy   Name  Inc. ", lead.CompanyName)
		assert.Equal(t, "UPPER@CASE.COM", lead.Email)
	})
}
