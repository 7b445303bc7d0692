// Package validate normalizes and checks individual lead fields. All
// checks are pure: format failures are reported as flags on the result,
// never as Go errors.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/leadscore-cli/internal/config"
	"github.com/sells-group/leadscore-cli/internal/model"
)

// Validator checks and cleans lead fields.
type Validator struct {
	v     *validator.Validate
	cfg   config.ValidationConfig
	title cases.Caser
}

// New creates a Validator. Zero-valued config fields fall back to the
// built-in defaults.
func New(cfg config.ValidationConfig) *Validator {
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = "US"
	}
	if len(cfg.FreeEmailDomains) == 0 {
		cfg.FreeEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "aol.com", "icloud.com"}
	}
	if len(cfg.RoleLocalParts) == 0 {
		cfg.RoleLocalParts = []string{"info", "sales", "admin", "support", "contact", "hello", "office", "team", "marketing", "noreply", "no-reply"}
	}
	return &Validator{
		v:     validator.New(),
		cfg:   cfg,
		title: cases.Title(language.English),
	}
}

// Email validates and normalizes an email address. Invalid formats fail
// with invalid_format; personal-host and role-inbox addresses validate
// with quality warnings.
func (val *Validator) Email(raw string) model.FieldResult {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return model.FieldResult{Reason: model.ReasonEmpty}
	}
	if err := val.v.Var(email, "required,email"); err != nil {
		return model.FieldResult{Normalized: email, Reason: model.ReasonInvalidFormat}
	}

	res := model.FieldResult{Valid: true, Normalized: email}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]
	for _, free := range val.cfg.FreeEmailDomains {
		if domain == free {
			res.Warnings = append(res.Warnings, model.WarnFreeEmailDomain)
			break
		}
	}
	for _, role := range val.cfg.RoleLocalParts {
		if local == role {
			res.Warnings = append(res.Warnings, model.WarnRoleAddress)
			break
		}
	}
	return res
}

// Phone validates a phone number and normalizes it to E.164. Numbers
// without an international prefix are interpreted in the default region.
// Parseable numbers that fail strict validation still pass with a
// missing_country_code warning when they carry at least ten digits.
func (val *Validator) Phone(raw string) model.FieldResult {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return model.FieldResult{Reason: model.ReasonEmpty}
	}

	digits := digitsOf(phone)
	if len(digits) < 7 || len(digits) > 15 {
		return model.FieldResult{Reason: model.ReasonInvalidFormat}
	}

	region := val.cfg.DefaultRegion
	if strings.HasPrefix(phone, "+") {
		region = ""
	}
	if num, err := phonenumbers.Parse(phone, region); err == nil && phonenumbers.IsValidNumber(num) {
		return model.FieldResult{
			Valid:      true,
			Normalized: phonenumbers.Format(num, phonenumbers.E164),
		}
	}

	// Not a strictly valid number; accept digit runs long enough to be a
	// plausible subscriber number and flag the missing region information.
	if len(digits) >= 10 {
		normalized := digits
		if strings.HasPrefix(phone, "+") {
			normalized = "+" + digits
		}
		return model.FieldResult{
			Valid:      true,
			Normalized: normalized,
			Warnings:   []string{model.WarnMissingCountryCode},
		}
	}

	return model.FieldResult{Reason: model.ReasonInvalidFormat}
}

// CompanyName cleans a company name: whitespace is collapsed and a single
// trailing corporate suffix is stripped. Single-character or pure-numeric
// names validate with a low_quality warning.
func (val *Validator) CompanyName(raw string) model.FieldResult {
	name := collapseSpace(raw)
	if name == "" {
		return model.FieldResult{Reason: model.ReasonEmpty}
	}
	name = strings.TrimSpace(companySuffix.ReplaceAllString(name, ""))

	res := model.FieldResult{Valid: true, Normalized: name}
	if isLowQualityName(name) {
		res.Warnings = append(res.Warnings, model.WarnLowQuality)
	}
	return res
}

// ContactName cleans a person name: whitespace is collapsed and each word
// is title-cased, keeping generational suffixes upper-case.
func (val *Validator) ContactName(raw string) model.FieldResult {
	name := collapseSpace(raw)
	if name == "" {
		return model.FieldResult{Reason: model.ReasonEmpty}
	}

	words := strings.Fields(name)
	for i, w := range words {
		if isGenerationalSuffix(w) {
			words[i] = strings.ToUpper(strings.TrimSuffix(w, "."))
			continue
		}
		words[i] = val.title.String(strings.ToLower(w))
	}
	cleaned := strings.Join(words, " ")

	res := model.FieldResult{Valid: true, Normalized: cleaned}
	if isLowQualityName(cleaned) {
		res.Warnings = append(res.Warnings, model.WarnLowQuality)
	}
	return res
}

// Website checks an optional URL. Empty values are valid; malformed values
// are flagged with invalid_url, never failed, since the field is optional.
func (val *Validator) Website(raw string) model.FieldResult {
	return val.checkURL(raw, false)
}

// LinkedIn checks an optional LinkedIn URL. Non-LinkedIn hosts are flagged
// with not_linkedin.
func (val *Validator) LinkedIn(raw string) model.FieldResult {
	return val.checkURL(raw, true)
}

func (val *Validator) checkURL(raw string, wantLinkedIn bool) model.FieldResult {
	u := strings.TrimSpace(raw)
	if u == "" {
		return model.FieldResult{Valid: true}
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}

	res := model.FieldResult{Valid: true, Normalized: u}
	if err := val.v.Var(u, "url"); err != nil {
		res.Warnings = append(res.Warnings, model.WarnInvalidURL)
		return res
	}
	if wantLinkedIn && !strings.Contains(strings.ToLower(u), "linkedin.com") {
		res.Warnings = append(res.Warnings, model.WarnNotLinkedIn)
	}
	return res
}

// WellFormed reports whether an optional URL-ish result is present and
// carries no malformedness warnings.
func WellFormed(res model.FieldResult) bool {
	return res.Valid &&
		!res.HasWarning(model.WarnInvalidURL) &&
		!res.HasWarning(model.WarnNotLinkedIn)
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isLowQualityName(name string) bool {
	runes := []rune(name)
	if len(runes) <= 1 {
		return true
	}
	for _, r := range runes {
		if r != ' ' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func isGenerationalSuffix(w string) bool {
	switch strings.ToUpper(strings.TrimSuffix(w, ".")) {
	case "JR", "SR", "II", "III", "IV", "V":
		return true
	}
	return false
}
