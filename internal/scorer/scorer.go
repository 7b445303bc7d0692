package scorer

import (
	"math"
	"strings"

	"github.com/sells-group/leadscore-cli/internal/config"
	"github.com/sells-group/leadscore-cli/internal/model"
	"github.com/sells-group/leadscore-cli/internal/validate"
)

// Scorer computes lead scores from immutable configuration tables.
type Scorer struct {
	cfg    config.ScoringConfig
	fields *validate.Validator
}

// New creates a Scorer. The config is expected to have passed
// ValidateConfig; incomplete configs are filled via WithDefaults.
func New(cfg config.ScoringConfig, fields *validate.Validator) *Scorer {
	return &Scorer{cfg: WithDefaults(cfg), fields: fields}
}

// Score computes the full breakdown for a single lead. It never fails:
// missing fields drive the relevant sub-scores toward zero and unrecognized
// categorical values fall back to default weights.
func (s *Scorer) Score(lead model.Lead) model.Breakdown {
	breakdown, _ := s.ScoreWithReport(lead)
	return breakdown
}

// ScoreWithReport computes the breakdown together with the validation
// report the sub-scores were derived from, so callers can surface both
// without validating twice.
func (s *Scorer) ScoreWithReport(lead model.Lead) (model.Breakdown, model.ValidationReport) {
	report := s.fields.Record(lead)
	cleaned := report.Cleaned

	company := s.companyScore(cleaned)
	contact := s.contactScore(lead, report)
	completeness := s.completenessScore(lead, report)
	engagement := s.engagementScore(cleaned)

	total := company*s.cfg.CompanyWeight +
		contact*s.cfg.ContactWeight +
		completeness*s.cfg.CompletenessWeight +
		engagement*s.cfg.EngagementWeight

	total = s.round(total)

	return model.Breakdown{
		Company:      company,
		Contact:      contact,
		Completeness: completeness,
		Engagement:   engagement,
		LeadScore:    total,
		Priority:     model.PriorityForScore(total),
	}, report
}

// companyScore combines the industry, size, and revenue table weights:
// industry x40 + size x30 + revenue x30, capped at 100.
func (s *Scorer) companyScore(lead model.Lead) float64 {
	score := s.industryWeight(lead.Industry)*40 +
		s.sizeWeight(lead.CompanySize)*30 +
		s.revenueWeight(lead.Revenue)*30
	return math.Min(score, 100)
}

// contactScore rewards reachable, personal contact data. Each signal
// contributes a bounded share; the sum is capped at 100.
func (s *Scorer) contactScore(lead model.Lead, report model.ValidationReport) float64 {
	var score float64

	email := report.Fields[model.FieldEmail]
	switch {
	case email.Valid:
		score += 30
		if email.HasWarning(model.WarnFreeEmailDomain) {
			score += 5 // personal inbox, slightly lower value
		} else {
			score += 15 // corporate address
		}
	case strings.TrimSpace(lead.Email) != "":
		score += 5 // present but invalid
	}

	if report.Fields[model.FieldPhone].Valid {
		score += 20
	}

	if linkedin := report.Fields[model.FieldLinkedIn]; linkedin.Normalized != "" && validate.WellFormed(linkedin) {
		score += 20
	}

	if contact := report.Fields[model.FieldContactName]; contact.Valid {
		if len(strings.Fields(contact.Normalized)) >= 2 {
			score += 15
		} else {
			score += 10
		}
	}

	if website := report.Fields[model.FieldWebsite]; website.Normalized != "" && validate.WellFormed(website) {
		score += 15
	}

	return math.Min(score, 100)
}

// engagementScore estimates outreach receptiveness from growth-industry
// membership, growth-stage company size, and an active web presence.
func (s *Scorer) engagementScore(lead model.Lead) float64 {
	var score float64

	industry := strings.ToLower(lead.Industry)
	for _, growth := range s.cfg.GrowthIndustries {
		if industry != "" && strings.Contains(industry, growth) {
			score += 40
			break
		}
	}

	for _, stage := range s.cfg.GrowthStageSizes {
		if lead.CompanySize == stage {
			score += 30
			break
		}
	}

	if strings.TrimSpace(lead.Website) != "" {
		score += 30
	}

	return math.Min(score, 100)
}

// industryWeight resolves the relevance weight for an industry label with
// a case-insensitive substring match against the table keys.
func (s *Scorer) industryWeight(industry string) float64 {
	lower := strings.ToLower(strings.TrimSpace(industry))
	if lower == "" {
		return s.cfg.DefaultIndustryWeight
	}
	if w, ok := s.cfg.IndustryWeights[lower]; ok {
		return w
	}
	// Substring fallback. Take the highest-weight match so the result does
	// not depend on map iteration order.
	best := s.cfg.DefaultIndustryWeight
	matched := false
	for label, w := range s.cfg.IndustryWeights {
		if strings.Contains(lower, label) && (!matched || w > best) {
			best = w
			matched = true
		}
	}
	return best
}

func (s *Scorer) sizeWeight(size string) float64 {
	if w, ok := s.cfg.SizeWeights[strings.ToLower(strings.TrimSpace(size))]; ok {
		return w
	}
	return s.cfg.DefaultSizeWeight
}

func (s *Scorer) revenueWeight(revenue string) float64 {
	if w, ok := s.cfg.RevenueWeights[strings.ToLower(strings.TrimSpace(revenue))]; ok {
		return w
	}
	return s.cfg.DefaultRevenueWeight
}

func (s *Scorer) round(v float64) float64 {
	factor := math.Pow(10, float64(s.cfg.Precision))
	return math.Round(v*factor) / factor
}
