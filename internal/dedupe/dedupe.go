// Package dedupe provides fuzzy lead similarity and duplicate grouping.
// It is pure: the caller owns any duplicate set.
package dedupe

import (
	"math"
	"regexp"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/sells-group/leadscore-cli/internal/model"
)

// DefaultThreshold is the similarity at or above which two leads are
// treated as probable duplicates.
const DefaultThreshold = 0.85

// Component weights. Company name dominates; email domain and contact name
// confirm. Absent components redistribute their weight.
const (
	companyWeight = 0.5
	domainWeight  = 0.25
	contactWeight = 0.25
)

// entitySuffixes matches trailing corporate entity suffixes stripped
// before name comparison.
var entitySuffixes = regexp.MustCompile(
	`(?i)\s*,?\s*(LLC|L\.?L\.?C\.?|INC\.?|INCORPORATED|CORP\.?|CORPORATION|` +
		`CO\.?|COMPANY|LTD\.?|LIMITED|L\.?P\.?|LLP|PLLC|P\.?C\.?)\s*\.?\s*$`)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// Matcher computes pairwise lead similarity.
type Matcher struct {
	params *levenshtein.Params
}

// NewMatcher creates a Matcher with default Levenshtein parameters.
func NewMatcher() *Matcher {
	return &Matcher{params: levenshtein.NewParams()}
}

// Similarity returns a score in [0,1] for two leads: Levenshtein ratio
// over normalized company names, exact email-domain match, and contact
// name ratio. Identical records score 1.0; records with nothing in common
// score near 0.
func (m *Matcher) Similarity(a, b model.Lead) float64 {
	var score, weight float64

	companyA, companyB := normalizeCompany(a.CompanyName), normalizeCompany(b.CompanyName)
	if companyA != "" || companyB != "" {
		weight += companyWeight
		score += companyWeight * m.ratio(companyA, companyB)
	}

	domainA, domainB := emailDomain(a.Email), emailDomain(b.Email)
	if domainA != "" || domainB != "" {
		weight += domainWeight
		if domainA == domainB {
			score += domainWeight
		}
	}

	contactA := strings.ToLower(strings.Join(strings.Fields(a.ContactName), " "))
	contactB := strings.ToLower(strings.Join(strings.Fields(b.ContactName), " "))
	if contactA != "" || contactB != "" {
		weight += contactWeight
		score += contactWeight * m.ratio(contactA, contactB)
	}

	if weight == 0 {
		return 0
	}
	return math.Round(score/weight*10000) / 10000
}

func (m *Matcher) ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return levenshtein.Similarity(a, b, m.params)
}

func normalizeCompany(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = entitySuffixes.ReplaceAllString(n, "")
	n = multiSpace.ReplaceAllString(n, " ")
	return strings.ToLower(strings.TrimSpace(n))
}

func emailDomain(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}
