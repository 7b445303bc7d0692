package validate

import (
	"math"
	"strings"

	"github.com/sells-group/leadscore-cli/internal/model"
)

// qualityWeights assigns each field's share of the data-quality score.
// Email and phone count only when valid; the rest count on presence.
var qualityWeights = map[string]float64{
	model.FieldEmail:       0.25,
	model.FieldPhone:       0.20,
	model.FieldCompanyName: 0.15,
	model.FieldContactName: 0.15,
	model.FieldIndustry:    0.10,
	model.FieldWebsite:     0.05,
	model.FieldLinkedIn:    0.05,
	model.FieldCompanySize: 0.03,
	model.FieldRevenue:     0.02,
}

// Record validates and cleans every field of a lead, returning the
// per-field report, the cleaned record, and a data-quality percentage.
// The input lead is never mutated.
func (val *Validator) Record(lead model.Lead) model.ValidationReport {
	fields := make(map[string]model.FieldResult, 9)

	company := val.CompanyName(lead.CompanyName)
	contact := val.ContactName(lead.ContactName)
	email := val.Email(lead.Email)
	phone := val.Phone(lead.Phone)
	website := val.Website(lead.Website)
	linkedin := val.LinkedIn(lead.LinkedIn)

	industry := val.Industry(lead.Industry)
	size := val.CompanySize(lead.CompanySize)
	revenue := val.Revenue(lead.Revenue)

	fields[model.FieldCompanyName] = company
	fields[model.FieldContactName] = contact
	fields[model.FieldEmail] = email
	fields[model.FieldPhone] = phone
	fields[model.FieldWebsite] = website
	fields[model.FieldLinkedIn] = linkedin
	fields[model.FieldIndustry] = model.FieldResult{
		Valid:      industry != "",
		Normalized: industry,
		Reason:     emptyReason(industry),
	}
	// Unrecognized categorical values are not errors; they standardize or
	// pass through, so presence alone decides validity.
	fields[model.FieldCompanySize] = model.FieldResult{Valid: true, Normalized: size}
	fields[model.FieldRevenue] = model.FieldResult{Valid: true, Normalized: revenue}

	cleaned := model.Lead{
		ID:          lead.ID,
		CompanyName: company.Normalized,
		ContactName: contact.Normalized,
		Email:       email.Normalized,
		Phone:       phone.Normalized,
		Industry:    industry,
		CompanySize: size,
		Revenue:     revenue,
		Website:     website.Normalized,
		LinkedIn:    linkedin.Normalized,
	}

	return model.ValidationReport{
		Fields:       fields,
		Cleaned:      cleaned,
		QualityScore: qualityScore(lead, fields),
	}
}

func qualityScore(lead model.Lead, fields map[string]model.FieldResult) float64 {
	var score float64
	for key, weight := range qualityWeights {
		switch key {
		case model.FieldEmail, model.FieldPhone:
			if fields[key].Valid {
				score += weight
			}
		default:
			if strings.TrimSpace(lead.Field(key)) != "" {
				score += weight
			}
		}
	}
	return math.Round(score*100*100) / 100
}

func emptyReason(value string) string {
	if value == "" {
		return model.ReasonEmpty
	}
	return ""
}
