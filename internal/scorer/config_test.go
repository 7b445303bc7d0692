package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadscore-cli/internal/config"
)

func TestValidateConfig(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(DefaultConfig()))
	})

	t.Run("weights must sum to one", func(t *testing.T) {
		c := DefaultConfig()
		c.CompanyWeight = 0.5
		err := ValidateConfig(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum to 1.0")
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		c := DefaultConfig()
		c.ContactWeight = -0.3
		c.CompanyWeight = 1.0 // keep the sum at 1.0 to isolate the sign check
		err := ValidateConfig(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contact_weight must be >= 0")
	})

	t.Run("table weight out of range", func(t *testing.T) {
		c := DefaultConfig()
		c.IndustryWeights = map[string]float64{"technology": 1.5}
		err := ValidateConfig(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "industry_weights[technology]")
	})

	t.Run("precision bounds", func(t *testing.T) {
		c := DefaultConfig()
		c.Precision = 9
		assert.Error(t, ValidateConfig(c))
	})
}

func TestWithDefaults(t *testing.T) {
	t.Run("zero config becomes default", func(t *testing.T) {
		got := WithDefaults(config.ScoringConfig{})
		assert.Equal(t, DefaultConfig(), got)
	})

	t.Run("partial table override kept", func(t *testing.T) {
		got := WithDefaults(config.ScoringConfig{
			IndustryWeights: map[string]float64{"aerospace": 0.75},
		})
		assert.Equal(t, map[string]float64{"aerospace": 0.75}, got.IndustryWeights)
		assert.Equal(t, DefaultConfig().SizeWeights, got.SizeWeights)
		assert.InDelta(t, 1.0, WeightSum(got), 0.001)
	})
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	merged := Merge(base, config.ScoringConfig{
		CompanyWeight:    0.5,
		ContactWeight:    0.2,
		GrowthIndustries: []string{"robotics"},
	})

	assert.InDelta(t, 0.5, merged.CompanyWeight, 0.001)
	assert.InDelta(t, 0.2, merged.ContactWeight, 0.001)
	// Untouched fields carry over from the base.
	assert.InDelta(t, base.CompletenessWeight, merged.CompletenessWeight, 0.001)
	assert.Equal(t, []string{"robotics"}, merged.GrowthIndustries)
	assert.Equal(t, base.IndustryWeights, merged.IndustryWeights)
}

func TestMergeZeroMeansUnset(t *testing.T) {
	base := DefaultConfig()
	merged := Merge(base, config.ScoringConfig{EngagementWeight: 0, Precision: 0})

	// An explicit 0 is indistinguishable from an absent field, so the base
	// values survive.
	assert.InDelta(t, base.EngagementWeight, merged.EngagementWeight, 0.001)
	assert.Equal(t, base.Precision, merged.Precision)
}
