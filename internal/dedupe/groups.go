package dedupe

import (
	"strings"

	"github.com/sells-group/leadscore-cli/internal/model"
)

// DuplicateGroup is a set of leads judged to describe the same prospect.
type DuplicateGroup struct {
	Leads []model.Lead `json:"leads"`
	// Similarity of the last pair merged into the group.
	Similarity float64 `json:"similarity_score"`
	// Recommended is the member with the most filled fields.
	Recommended model.Lead `json:"recommended_lead"`
}

// FindDuplicates groups probable duplicates at the given threshold
// (DefaultThreshold when <= 0). Each lead belongs to at most one group;
// leads without a duplicate are omitted from the result.
func (m *Matcher) FindDuplicates(leads []model.Lead, threshold float64) []DuplicateGroup {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var groups []DuplicateGroup
	claimed := make([]bool, len(leads))

	for i := range leads {
		if claimed[i] {
			continue
		}

		group := []model.Lead{leads[i]}
		var lastSim float64
		for j := i + 1; j < len(leads); j++ {
			if claimed[j] {
				continue
			}
			sim := m.Similarity(leads[i], leads[j])
			if sim >= threshold {
				group = append(group, leads[j])
				claimed[j] = true
				lastSim = sim
			}
		}

		if len(group) > 1 {
			claimed[i] = true
			groups = append(groups, DuplicateGroup{
				Leads:       group,
				Similarity:  lastSim,
				Recommended: bestOf(group),
			})
		}
	}

	return groups
}

// bestOf picks the group member with the most filled fields, breaking
// ties in favor of the earliest record.
func bestOf(group []model.Lead) model.Lead {
	best := group[0]
	bestFilled := filledFields(best)
	for _, lead := range group[1:] {
		if n := filledFields(lead); n > bestFilled {
			best = lead
			bestFilled = n
		}
	}
	return best
}

func filledFields(lead model.Lead) int {
	n := 0
	for _, key := range model.RequiredFields {
		if strings.TrimSpace(lead.Field(key)) != "" {
			n++
		}
	}
	for _, key := range model.OptionalFields {
		if strings.TrimSpace(lead.Field(key)) != "" {
			n++
		}
	}
	return n
}
