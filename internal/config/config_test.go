package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.InDelta(t, 0.85, cfg.Dedupe.Threshold, 0.001)
	assert.Equal(t, "US", cfg.Validation.DefaultRegion)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LEADSCORE_SERVER_PORT", "9090")
	t.Setenv("LEADSCORE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadWeightsFile(t *testing.T) {
	t.Run("partial file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weights.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"company_weight: 0.5\n"+
				"contact_weight: 0.2\n"+
				"industry_weights:\n"+
				"  aerospace: 0.75\n"), 0o644))

		sc, err := LoadWeightsFile(path)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, sc.CompanyWeight, 0.001)
		assert.InDelta(t, 0.2, sc.ContactWeight, 0.001)
		assert.Zero(t, sc.CompletenessWeight)
		assert.Equal(t, map[string]float64{"aerospace": 0.75}, sc.IndustryWeights)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadWeightsFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("company_weight: [not a number"), 0o644))
		_, err := LoadWeightsFile(path)
		assert.Error(t, err)
	})
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "loud", Format: "json"}))
}
