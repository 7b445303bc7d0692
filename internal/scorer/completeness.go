package scorer

import (
	"math"
	"strings"

	"github.com/sells-group/leadscore-cli/internal/model"
)

// Completeness point shares: five required fields at 15 points and four
// optional fields at 6.25 points sum to exactly 100 for a fully populated,
// fully valid record.
const (
	requiredFieldPoints = 15.0
	optionalFieldPoints = 6.25
)

// completenessScore measures how much of the expected record is present
// and well-formed. A present-but-invalid field earns half its points, so
// data richness still counts while malformed entries are penalized.
func (s *Scorer) completenessScore(lead model.Lead, report model.ValidationReport) float64 {
	var score float64

	for _, key := range model.RequiredFields {
		score += fieldPoints(lead, report, key, requiredFieldPoints)
	}
	for _, key := range model.OptionalFields {
		score += fieldPoints(lead, report, key, optionalFieldPoints)
	}

	return math.Min(score, 100)
}

func fieldPoints(lead model.Lead, report model.ValidationReport, key string, points float64) float64 {
	if strings.TrimSpace(lead.Field(key)) == "" {
		return 0
	}
	res := report.Fields[key]
	wellFormed := res.Valid
	switch key {
	case model.FieldWebsite, model.FieldLinkedIn:
		// Optional URLs flag malformedness instead of failing validation.
		wellFormed = !res.HasWarning(model.WarnInvalidURL) &&
			!res.HasWarning(model.WarnNotLinkedIn)
	}
	if wellFormed {
		return points
	}
	return points / 2
}
