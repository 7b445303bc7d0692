package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadscore-cli/internal/config"
	"github.com/sells-group/leadscore-cli/internal/model"
	"github.com/sells-group/leadscore-cli/internal/validate"
)

func newTestScorer() *Scorer {
	return New(DefaultConfig(), validate.New(config.ValidationConfig{}))
}

func strongLead() model.Lead {
	return model.Lead{
		CompanyName: "TechCorp Solutions",
		ContactName: "John Smith",
		Email:       "john.smith@techcorp.com",
		Phone:       "+1-650-253-0000",
		Industry:    "Technology",
		CompanySize: "51-200",
		Revenue:     "10M-50M",
		Website:     "https://techcorp.com",
		LinkedIn:    "https://linkedin.com/company/techcorp",
	}
}

func TestScoreStrongLead(t *testing.T) {
	s := newTestScorer()
	b := s.Score(strongLead())

	// industry 0.9*40 + size 0.7*30 + revenue 0.8*30
	assert.InDelta(t, 81.0, b.Company, 0.001)
	assert.InDelta(t, 100.0, b.Contact, 0.001)
	assert.InDelta(t, 100.0, b.Completeness, 0.001)
	assert.InDelta(t, 100.0, b.Engagement, 0.001)
	assert.InDelta(t, 92.4, b.LeadScore, 0.001)
	assert.Equal(t, model.PriorityHigh, b.Priority)
}

// A record with loosely formatted size and phone values. The size "50-200"
// buckets to "11-50" and the phone only passes the digit-count fallback, yet
// both still count as present for completeness.
func TestScoreLooseFormats(t *testing.T) {
	s := newTestScorer()
	b := s.Score(model.Lead{
		CompanyName: "TechCorp Solutions",
		ContactName: "John Smith",
		Email:       "john.smith@techcorp.com",
		Phone:       "+1-555-123-4567",
		Industry:    "Technology",
		CompanySize: "50-200",
		Revenue:     "10M-50M",
		Website:     "https://techcorp.com",
		LinkedIn:    "https://linkedin.com/company/techcorp",
	})

	// industry 0.9*40 + size 0.5*30 + revenue 0.8*30
	assert.InDelta(t, 75.0, b.Company, 0.001)
	assert.InDelta(t, 100.0, b.Contact, 0.001)
	assert.InDelta(t, 100.0, b.Completeness, 0.001)
	// growth industry 40 + website 30; size bucket is outside the growth range
	assert.InDelta(t, 70.0, b.Engagement, 0.001)
	assert.InDelta(t, 87.0, b.LeadScore, 0.001)
	assert.Equal(t, model.PriorityHigh, b.Priority)
}

func TestScoreEmptyLead(t *testing.T) {
	s := newTestScorer()
	b := s.Score(model.Lead{})

	// Only the company sub-score is non-zero, via the default table weights.
	assert.InDelta(t, 50.0, b.Company, 0.001)
	assert.Zero(t, b.Contact)
	assert.Zero(t, b.Completeness)
	assert.Zero(t, b.Engagement)
	assert.InDelta(t, 20.0, b.LeadScore, 0.001)
	assert.Equal(t, model.PriorityLow, b.Priority)
}

func TestScoreBounds(t *testing.T) {
	s := newTestScorer()

	leads := []model.Lead{
		{},
		strongLead(),
		{CompanyName: "Solo", Email: "broken", Industry: "Mystery Sector"},
		{ContactName: "Ann", Phone: "000-000-0000", CompanySize: "3"},
	}
	for _, lead := range leads {
		b := s.Score(lead)
		for name, v := range map[string]float64{
			"company": b.Company, "contact": b.Contact,
			"completeness": b.Completeness, "engagement": b.Engagement,
			"lead_score": b.LeadScore,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 100.0, name)
		}
	}
}

func TestScoreDeterminism(t *testing.T) {
	s := newTestScorer()
	lead := strongLead()

	first := s.Score(lead)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(lead))
	}
}

func TestScoreMonotonicity(t *testing.T) {
	s := newTestScorer()

	lead := model.Lead{
		CompanyName: "StartupXYZ",
		ContactName: "Mike Chen",
		Email:       "mike@startupxyz.io",
		Industry:    "SaaS",
		CompanySize: "1-10",
	}
	before := s.Score(lead)

	lead.Phone = "+1-650-253-0000"
	after := s.Score(lead)

	assert.Greater(t, after.LeadScore, before.LeadScore)
}

func TestContactScoreSignals(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		name string
		lead model.Lead
		want float64
	}{
		{"corporate email only", model.Lead{Email: "a@acme.com"}, 45},
		{"free email only", model.Lead{Email: "a@gmail.com"}, 35},
		{"invalid email only", model.Lead{Email: "nope"}, 5},
		{"phone only", model.Lead{Phone: "+1-650-253-0000"}, 20},
		{"full name only", model.Lead{ContactName: "John Smith"}, 15},
		{"single name only", model.Lead{ContactName: "Cher"}, 10},
		{"website only", model.Lead{Website: "https://acme.com"}, 15},
		{"linkedin only", model.Lead{LinkedIn: "https://linkedin.com/in/x"}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := s.Score(tt.lead)
			assert.InDelta(t, tt.want, b.Contact, 0.001)
		})
	}
}

func TestEngagementScoreSignals(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		name string
		lead model.Lead
		want float64
	}{
		{"growth industry", model.Lead{Industry: "SaaS"}, 40},
		{"growth stage size", model.Lead{CompanySize: "201-500"}, 30},
		{"website presence", model.Lead{Website: "https://x.dev"}, 30},
		{"all three", model.Lead{Industry: "Technology", CompanySize: "51-200", Website: "https://x.dev"}, 100},
		{"nothing", model.Lead{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := s.Score(tt.lead)
			assert.InDelta(t, tt.want, b.Engagement, 0.001)
		})
	}
}

func TestIndustryWeightLookup(t *testing.T) {
	s := newTestScorer()

	assert.InDelta(t, 0.9, s.industryWeight("Technology"), 0.001)
	assert.InDelta(t, 0.95, s.industryWeight("saas"), 0.001)
	// Substring fallback.
	assert.InDelta(t, 0.85, s.industryWeight("consumer fintech"), 0.001)
	// Unknown labels use the default.
	assert.InDelta(t, 0.5, s.industryWeight("Agriculture"), 0.001)
	assert.InDelta(t, 0.5, s.industryWeight(""), 0.001)
}

func TestScoreWithReportSharesValidation(t *testing.T) {
	s := newTestScorer()

	b, report := s.ScoreWithReport(strongLead())
	require.NotNil(t, report.Fields)
	assert.Equal(t, "TechCorp Solutions", report.Cleaned.CompanyName)
	assert.Equal(t, model.PriorityHigh, b.Priority)
	assert.InDelta(t, 100.0, report.QualityScore, 0.001)
}
