// Package model defines the lead record and scoring result types shared
// across the engine and its adapters.
package model

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrInvalidInput marks a record that is structurally wrong (a non-string
// field value). It is fatal for that single record only.
var ErrInvalidInput = eris.New("model: invalid input")

// Canonical field keys. Absent fields are empty strings, never a distinct
// null state.
const (
	FieldCompanyName = "company_name"
	FieldContactName = "contact_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldIndustry    = "industry"
	FieldCompanySize = "company_size"
	FieldRevenue     = "revenue"
	FieldWebsite     = "website"
	FieldLinkedIn    = "linkedin"
)

// RequiredFields lists the fields a complete lead must carry.
var RequiredFields = []string{
	FieldCompanyName,
	FieldContactName,
	FieldEmail,
	FieldPhone,
	FieldIndustry,
}

// OptionalFields lists the fields that enrich a lead but are not required.
var OptionalFields = []string{
	FieldCompanySize,
	FieldRevenue,
	FieldWebsite,
	FieldLinkedIn,
}

// Lead is a single sales lead record. ID is an ephemeral process-assigned
// identifier used only for list management; it never participates in scoring.
type Lead struct {
	ID          string `json:"id,omitempty"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size,omitempty"`
	Revenue     string `json:"revenue,omitempty"`
	Website     string `json:"website,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
}

// Field returns the value for a canonical field key, or "" for unknown keys.
func (l Lead) Field(key string) string {
	switch key {
	case FieldCompanyName:
		return l.CompanyName
	case FieldContactName:
		return l.ContactName
	case FieldEmail:
		return l.Email
	case FieldPhone:
		return l.Phone
	case FieldIndustry:
		return l.Industry
	case FieldCompanySize:
		return l.CompanySize
	case FieldRevenue:
		return l.Revenue
	case FieldWebsite:
		return l.Website
	case FieldLinkedIn:
		return l.LinkedIn
	}
	return ""
}

// SetField assigns a canonical field by key. Unknown keys are ignored and
// reported via the return value.
func (l *Lead) SetField(key, value string) bool {
	switch key {
	case FieldCompanyName:
		l.CompanyName = value
	case FieldContactName:
		l.ContactName = value
	case FieldEmail:
		l.Email = value
	case FieldPhone:
		l.Phone = value
	case FieldIndustry:
		l.Industry = value
	case FieldCompanySize:
		l.CompanySize = value
	case FieldRevenue:
		l.Revenue = value
	case FieldWebsite:
		l.Website = value
	case FieldLinkedIn:
		l.LinkedIn = value
	default:
		return false
	}
	return true
}

// MissingFields returns the canonical keys (required then optional) whose
// values are empty after trimming.
func (l Lead) MissingFields() []string {
	var missing []string
	for _, key := range RequiredFields {
		if strings.TrimSpace(l.Field(key)) == "" {
			missing = append(missing, key)
		}
	}
	for _, key := range OptionalFields {
		if strings.TrimSpace(l.Field(key)) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// RawRecord is an untyped lead record as received from JSON bodies or other
// loosely typed sources.
type RawRecord map[string]any

// LeadFromRaw converts a raw record into a Lead. Values must be strings or
// nil; anything else fails with ErrInvalidInput naming the offending field.
// Unknown keys are ignored so callers can pass through enriched payloads.
func LeadFromRaw(raw RawRecord) (Lead, error) {
	var lead Lead
	for key, value := range raw {
		if value == nil {
			continue
		}
		s, ok := value.(string)
		if !ok {
			return Lead{}, eris.Wrapf(ErrInvalidInput, "field %q has non-string value (%T)", key, value)
		}
		lead.SetField(key, s)
	}
	return lead, nil
}

// DisplayName converts a canonical field key to a human-readable label,
// e.g. "company_size" -> "Company Size".
func DisplayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// String implements fmt.Stringer for log-friendly output.
func (l Lead) String() string {
	return fmt.Sprintf("%s <%s>", l.CompanyName, l.Email)
}
