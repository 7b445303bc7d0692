package model

// Failure reasons reported in FieldResult.Reason.
const (
	ReasonEmpty         = "empty"
	ReasonInvalidFormat = "invalid_format"
)

// Quality warnings reported in FieldResult.Warnings. Warnings downgrade a
// field's contribution to scoring without invalidating it.
const (
	WarnFreeEmailDomain    = "free_email_domain"
	WarnRoleAddress        = "role_address"
	WarnLowQuality         = "low_quality"
	WarnMissingCountryCode = "missing_country_code"
	WarnInvalidURL         = "invalid_url"
	WarnNotLinkedIn        = "not_linkedin"
)

// FieldResult is the validation outcome for a single field.
type FieldResult struct {
	Valid      bool     `json:"valid"`
	Normalized string   `json:"normalized,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// HasWarning reports whether the result carries the given warning.
func (r FieldResult) HasWarning(w string) bool {
	for _, got := range r.Warnings {
		if got == w {
			return true
		}
	}
	return false
}

// ValidationReport is the per-field validation outcome for a whole lead,
// together with the cleaned record and an overall data-quality percentage.
type ValidationReport struct {
	Fields       map[string]FieldResult `json:"fields"`
	Cleaned      Lead                   `json:"cleaned"`
	QualityScore float64                `json:"data_quality_score"`
}

// FieldValid reports whether the named field validated successfully.
// Unknown fields report false.
func (r ValidationReport) FieldValid(key string) bool {
	res, ok := r.Fields[key]
	return ok && res.Valid
}
