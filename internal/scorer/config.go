// Package scorer implements weighted lead scoring: four sub-scores combined
// into a 0-100 lead score, a priority tier, and outreach recommendations.
package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadscore-cli/internal/config"
)

// DefaultConfig returns a config.ScoringConfig with the built-in weight
// tables. Sub-score weights sum to 1.0.
func DefaultConfig() config.ScoringConfig {
	return config.ScoringConfig{
		// Top-level split: company 40%, contact 30%, completeness 20%,
		// engagement 10%.
		CompanyWeight:      0.40,
		ContactWeight:      0.30,
		CompletenessWeight: 0.20,
		EngagementWeight:   0.10,

		// Industry relevance (higher = more valuable for B2B outreach).
		IndustryWeights: map[string]float64{
			"saas":          0.95,
			"technology":    0.9,
			"software":      0.9,
			"fintech":       0.85,
			"healthcare":    0.8,
			"manufacturing": 0.7,
			"consulting":    0.7,
			"retail":        0.6,
			"education":     0.6,
			"real estate":   0.5,
			"other":         0.5,
		},

		// Employee-count buckets, monotonic by revenue potential.
		SizeWeights: map[string]float64{
			"1-10":    0.3,
			"11-50":   0.5,
			"51-200":  0.7,
			"201-500": 0.8,
			"500+":    0.9,
		},

		// Annual revenue buckets.
		RevenueWeights: map[string]float64{
			"0-1m":     0.2,
			"1m-5m":    0.4,
			"5m-10m":   0.6,
			"10m-50m":  0.8,
			"50m-100m": 0.9,
			"100m+":    1.0,
		},

		DefaultIndustryWeight: 0.5,
		DefaultSizeWeight:     0.5,
		DefaultRevenueWeight:  0.5,

		// Engagement proxies.
		GrowthIndustries: []string{"technology", "saas", "software", "fintech", "ai", "machine learning"},
		GrowthStageSizes: []string{"51-200", "201-500"},

		Precision: 2,
	}
}

// WithDefaults fills zero-valued fields of a ScoringConfig from the
// defaults, so a partial config file or weights file only overrides what
// it sets. Zero means unset, so a config file cannot pin a top-level
// weight or the precision to literal 0; ValidateConfig rejects zero
// weight sums anyway, and precision 0 has no practical use for scores.
func WithDefaults(c config.ScoringConfig) config.ScoringConfig {
	def := DefaultConfig()

	if c.CompanyWeight == 0 && c.ContactWeight == 0 && c.CompletenessWeight == 0 && c.EngagementWeight == 0 {
		c.CompanyWeight = def.CompanyWeight
		c.ContactWeight = def.ContactWeight
		c.CompletenessWeight = def.CompletenessWeight
		c.EngagementWeight = def.EngagementWeight
	}
	if len(c.IndustryWeights) == 0 {
		c.IndustryWeights = def.IndustryWeights
	}
	if len(c.SizeWeights) == 0 {
		c.SizeWeights = def.SizeWeights
	}
	if len(c.RevenueWeights) == 0 {
		c.RevenueWeights = def.RevenueWeights
	}
	if c.DefaultIndustryWeight == 0 {
		c.DefaultIndustryWeight = def.DefaultIndustryWeight
	}
	if c.DefaultSizeWeight == 0 {
		c.DefaultSizeWeight = def.DefaultSizeWeight
	}
	if c.DefaultRevenueWeight == 0 {
		c.DefaultRevenueWeight = def.DefaultRevenueWeight
	}
	if len(c.GrowthIndustries) == 0 {
		c.GrowthIndustries = def.GrowthIndustries
	}
	if len(c.GrowthStageSizes) == 0 {
		c.GrowthStageSizes = def.GrowthStageSizes
	}
	if c.Precision == 0 {
		c.Precision = def.Precision
	}
	return c
}

// WeightSum returns the sum of the four sub-score weights.
func WeightSum(c config.ScoringConfig) float64 {
	return c.CompanyWeight + c.ContactWeight + c.CompletenessWeight + c.EngagementWeight
}

// ValidateConfig checks that a ScoringConfig is internally consistent.
func ValidateConfig(c config.ScoringConfig) error {
	var errs []string

	weights := map[string]float64{
		"company_weight":      c.CompanyWeight,
		"contact_weight":      c.ContactWeight,
		"completeness_weight": c.CompletenessWeight,
		"engagement_weight":   c.EngagementWeight,
	}
	for name, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	// Weights must sum to 1.0 (allow tolerance for floating-point).
	if sum := WeightSum(c); math.Abs(sum-1.0) > 0.001 {
		errs = append(errs, fmt.Sprintf("sub-score weights should sum to 1.0, got %.3f", sum))
	}

	for name, tbl := range map[string]map[string]float64{
		"industry_weights": c.IndustryWeights,
		"size_weights":     c.SizeWeights,
		"revenue_weights":  c.RevenueWeights,
	} {
		for label, w := range tbl {
			if w < 0 || w > 1 {
				errs = append(errs, fmt.Sprintf("%s[%s] must be in [0,1], got %.2f", name, label, w))
			}
		}
	}

	for name, w := range map[string]float64{
		"default_industry_weight": c.DefaultIndustryWeight,
		"default_size_weight":     c.DefaultSizeWeight,
		"default_revenue_weight":  c.DefaultRevenueWeight,
	} {
		if w < 0 || w > 1 {
			errs = append(errs, fmt.Sprintf("%s must be in [0,1], got %.2f", name, w))
		}
	}

	if c.Precision < 0 || c.Precision > 6 {
		errs = append(errs, fmt.Sprintf("precision must be between 0 and 6, got %d", c.Precision))
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Merge overlays the non-zero fields of an override ScoringConfig onto a
// base config. Used for --weights files. Like WithDefaults it treats zero
// as unset, so an override cannot force a weight or precision to 0.
func Merge(base, override config.ScoringConfig) config.ScoringConfig {
	c := base
	if override.CompanyWeight != 0 {
		c.CompanyWeight = override.CompanyWeight
	}
	if override.ContactWeight != 0 {
		c.ContactWeight = override.ContactWeight
	}
	if override.CompletenessWeight != 0 {
		c.CompletenessWeight = override.CompletenessWeight
	}
	if override.EngagementWeight != 0 {
		c.EngagementWeight = override.EngagementWeight
	}
	if len(override.IndustryWeights) > 0 {
		c.IndustryWeights = override.IndustryWeights
	}
	if len(override.SizeWeights) > 0 {
		c.SizeWeights = override.SizeWeights
	}
	if len(override.RevenueWeights) > 0 {
		c.RevenueWeights = override.RevenueWeights
	}
	if override.DefaultIndustryWeight != 0 {
		c.DefaultIndustryWeight = override.DefaultIndustryWeight
	}
	if override.DefaultSizeWeight != 0 {
		c.DefaultSizeWeight = override.DefaultSizeWeight
	}
	if override.DefaultRevenueWeight != 0 {
		c.DefaultRevenueWeight = override.DefaultRevenueWeight
	}
	if len(override.GrowthIndustries) > 0 {
		c.GrowthIndustries = override.GrowthIndustries
	}
	if len(override.GrowthStageSizes) > 0 {
		c.GrowthStageSizes = override.GrowthStageSizes
	}
	if override.Precision != 0 {
		c.Precision = override.Precision
	}
	return c
}
