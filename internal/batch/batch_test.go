package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadscore-cli/internal/config"
	"github.com/sells-group/leadscore-cli/internal/model"
	"github.com/sells-group/leadscore-cli/internal/scorer"
	"github.com/sells-group/leadscore-cli/internal/validate"
)

func newTestOrchestrator(concurrency int) *Orchestrator {
	v := validate.New(config.ValidationConfig{})
	s := scorer.New(scorer.DefaultConfig(), v)
	return New(s, concurrency)
}

func rawLead(company, email string) model.RawRecord {
	return model.RawRecord{
		"company_name": company,
		"contact_name": "Jane Doe",
		"email":        email,
		"industry":     "Technology",
	}
}

func TestRunPartialFailure(t *testing.T) {
	o := newTestOrchestrator(4)

	records := []model.RawRecord{
		rawLead("Alpha", "a@alpha.com"),
		{"company_name": "Broken", "revenue": 12345}, // non-string value
		rawLead("Gamma", "g@gamma.com"),
	}

	out := o.Run(context.Background(), records)

	require.Len(t, out.Results, 2)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, 1, out.Errors[0].Index)
	assert.Contains(t, out.Errors[0].Error, "revenue")

	assert.Equal(t, 3, out.Summary.Total)
	assert.Equal(t, 2, out.Summary.Scored)
	assert.Equal(t, 1, out.Summary.Failed)
}

func TestRunPreservesInputOrder(t *testing.T) {
	o := newTestOrchestrator(8)

	var records []model.RawRecord
	companies := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	for _, c := range companies {
		records = append(records, rawLead(c+" Industries", "x@"+c+".com"))
	}

	out := o.Run(context.Background(), records)
	require.Len(t, out.Results, len(companies))
	for i, r := range out.Results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, companies[i]+" Industries", r.Lead.CompanyName)
	}
}

func TestRunLeadsSummary(t *testing.T) {
	o := newTestOrchestrator(2)

	leads := []model.Lead{
		{
			CompanyName: "TechCorp Solutions",
			ContactName: "John Smith",
			Email:       "john.smith@techcorp.com",
			Phone:       "+1-650-253-0000",
			Industry:    "Technology",
			CompanySize: "51-200",
			Revenue:     "10M-50M",
			Website:     "https://techcorp.com",
			LinkedIn:    "https://linkedin.com/company/techcorp",
		},
		{CompanyName: "Sparse Co"},
	}

	out := o.RunLeads(context.Background(), leads)
	require.Len(t, out.Results, 2)

	assert.Equal(t, model.PriorityHigh, out.Results[0].Breakdown.Priority)
	assert.Equal(t, model.PriorityLow, out.Results[1].Breakdown.Priority)

	assert.Equal(t, 1, out.Summary.HighPriority)
	assert.Equal(t, 0, out.Summary.MedPriority)
	assert.Equal(t, 1, out.Summary.LowPriority)
	assert.Equal(t, 0, out.Summary.Failed)

	want := (out.Results[0].Breakdown.LeadScore + out.Results[1].Breakdown.LeadScore) / 2
	assert.InDelta(t, want, out.Summary.AverageScore, 0.01)
}

func TestRunDeterministicAcrossConcurrency(t *testing.T) {
	records := []model.RawRecord{
		rawLead("Alpha", "a@alpha.com"),
		rawLead("Beta", "b@beta.com"),
		rawLead("Gamma", "g@gamma.com"),
		rawLead("Delta", "d@delta.com"),
	}

	serial := newTestOrchestrator(1).Run(context.Background(), records)
	parallel := newTestOrchestrator(8).Run(context.Background(), records)

	assert.Equal(t, serial.Results, parallel.Results)
	assert.Equal(t, serial.Summary, parallel.Summary)
}

func TestRunEmptyInput(t *testing.T) {
	o := newTestOrchestrator(4)
	out := o.Run(context.Background(), nil)

	assert.Empty(t, out.Results)
	assert.Empty(t, out.Errors)
	assert.Zero(t, out.Summary.Total)
	assert.Zero(t, out.Summary.AverageScore)
}
