package model

// Priority classifies a lead by final score.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priority thresholds. The mapping is a step function of the rounded score:
// High at 80 and above, Medium at 60 and above, Low below that.
const (
	HighThreshold   = 80.0
	MediumThreshold = 60.0
)

// PriorityForScore maps a final lead score to its priority tier.
func PriorityForScore(score float64) Priority {
	switch {
	case score >= HighThreshold:
		return PriorityHigh
	case score >= MediumThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Breakdown holds the four weighted sub-scores and the combined result.
// All values live in [0,100].
type Breakdown struct {
	Company      float64  `json:"company"`
	Contact      float64  `json:"contact"`
	Completeness float64  `json:"completeness"`
	Engagement   float64  `json:"engagement"`
	LeadScore    float64  `json:"lead_score"`
	Priority     Priority `json:"priority_level"`
}

// ScoredLead pairs a lead with its scoring output.
type ScoredLead struct {
	Lead            Lead      `json:"lead"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations"`
}
