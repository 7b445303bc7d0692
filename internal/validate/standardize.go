package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// companySuffix matches a single trailing corporate entity suffix.
var companySuffix = regexp.MustCompile(`(?i),?\s+(inc\.?|llc\.?|corp\.?|ltd\.?)$`)

// industryAliases maps lowercase keywords to canonical industry labels.
// Ordered most-specific first so "fintech" does not resolve via "tech".
var industryAliases = []struct {
	keyword  string
	industry string
}{
	{"fintech", "Fintech"},
	{"saas", "SaaS"},
	{"software", "Software"},
	{"tech", "Technology"},
	{"healthcare", "Healthcare"},
	{"health care", "Healthcare"},
	{"manufacturing", "Manufacturing"},
	{"retail", "Retail"},
	{"real estate", "Real Estate"},
	{"education", "Education"},
	{"consulting", "Consulting"},
}

// sizeAliases maps descriptive size keywords to canonical employee buckets.
var sizeAliases = []struct {
	keyword string
	bucket  string
}{
	{"startup", "1-10"},
	{"small", "11-50"},
	{"medium", "51-200"},
	{"mid-size", "51-200"},
	{"large", "201-500"},
	{"enterprise", "500+"},
}

var firstNumber = regexp.MustCompile(`[\d.]+`)

// Industry standardizes an industry label through the alias table. Unmatched
// non-empty values are title-cased as-is; empty stays empty so missing and
// unrecognized inputs remain distinguishable.
func (val *Validator) Industry(raw string) string {
	industry := strings.TrimSpace(raw)
	if industry == "" {
		return ""
	}
	lower := strings.ToLower(industry)
	for _, alias := range industryAliases {
		if strings.Contains(lower, alias.keyword) {
			return alias.industry
		}
	}
	return val.title.String(lower)
}

// CompanySize standardizes a company-size description to a canonical
// employee bucket. Descriptive keywords map directly; otherwise the first
// number decides the bucket. Unparseable values pass through unchanged.
func (val *Validator) CompanySize(raw string) string {
	size := strings.TrimSpace(raw)
	if size == "" {
		return ""
	}
	lower := strings.ToLower(size)
	for _, alias := range sizeAliases {
		if strings.Contains(lower, alias.keyword) {
			return alias.bucket
		}
	}

	match := firstNumber.FindString(lower)
	if match == "" {
		return size
	}
	employees, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return size
	}
	// "500+" style inputs are open-ended upward.
	if strings.Contains(lower, "+") && employees >= 500 {
		return "500+"
	}
	switch {
	case employees <= 10:
		return "1-10"
	case employees <= 50:
		return "11-50"
	case employees <= 200:
		return "51-200"
	case employees <= 500:
		return "201-500"
	default:
		return "500+"
	}
}

// Revenue standardizes a revenue description to a canonical bucket by
// parsing the leading magnitude and its k/M/B suffix. Unparseable values
// pass through unchanged.
func (val *Validator) Revenue(raw string) string {
	revenue := strings.TrimSpace(raw)
	if revenue == "" {
		return ""
	}
	lower := strings.ToLower(revenue)

	match := firstNumber.FindString(lower)
	if match == "" {
		return revenue
	}
	value, err := strconv.ParseFloat(strings.Trim(match, "."), 64)
	if err != nil {
		return revenue
	}
	switch {
	case strings.Contains(lower, "k") || strings.Contains(lower, "thousand"):
		value *= 1_000
	case strings.Contains(lower, "b") || strings.Contains(lower, "billion"):
		value *= 1_000_000_000
	case strings.Contains(lower, "m") || strings.Contains(lower, "million"):
		value *= 1_000_000
	}

	switch {
	case value < 1_000_000:
		return "0-1M"
	case value < 5_000_000:
		return "1M-5M"
	case value < 10_000_000:
		return "5M-10M"
	case value < 50_000_000:
		return "10M-50M"
	case value < 100_000_000:
		return "50M-100M"
	default:
		return "100M+"
	}
}
