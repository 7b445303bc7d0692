package scorer

import (
	"fmt"
	"strings"

	"github.com/sells-group/leadscore-cli/internal/model"
)

// MaxRecommendations caps the recommendation list length.
const MaxRecommendations = 5

// Recommend derives actionable suggestions from a score breakdown. Rules
// run in fixed priority order and each contributes at most one entry; an
// empty list is a valid outcome for unremarkable leads.
func (s *Scorer) Recommend(breakdown model.Breakdown, lead model.Lead) []string {
	var recs []string

	if breakdown.Contact < 50 {
		recs = append(recs, "Verify and update the contact's email and phone number before outreach")
	}

	if breakdown.Completeness < 70 {
		if missing := lead.MissingFields(); len(missing) > 0 {
			labels := make([]string, len(missing))
			for i, key := range missing {
				labels[i] = model.DisplayName(key)
			}
			recs = append(recs, fmt.Sprintf("Complete missing information: %s", strings.Join(labels, ", ")))
		}
	}

	if breakdown.Company < 60 {
		if s.industryWeight(lead.Industry) >= 0.8 {
			recs = append(recs, "Re-confirm company size and revenue data; the industry itself is a strong fit")
		} else {
			recs = append(recs, "Consider targeting companies in higher-relevance industries such as Technology or SaaS")
		}
	}

	if breakdown.Engagement < 50 {
		recs = append(recs, "This lead may need more nurturing before direct outreach")
	}

	if breakdown.Company >= 80 && breakdown.Contact >= 70 {
		recs = append(recs, "High-value lead - prioritize for immediate outreach")
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
