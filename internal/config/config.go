package config

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	Scoring    ScoringConfig    `yaml:"scoring" mapstructure:"scoring"`
	Validation ValidationConfig `yaml:"validation" mapstructure:"validation"`
	Dedupe     DedupeConfig     `yaml:"dedupe" mapstructure:"dedupe"`
	Batch      BatchConfig      `yaml:"batch" mapstructure:"batch"`
	Ingest     IngestConfig     `yaml:"ingest" mapstructure:"ingest"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// ScoringConfig holds the weight tables and sub-weights used by the lead
// scorer. The tables are heuristic and replaceable; the top-level
// 40/30/20/10 split is the contract.
type ScoringConfig struct {
	// Top-level sub-score weights; must sum to 1.0.
	CompanyWeight      float64 `yaml:"company_weight" mapstructure:"company_weight"`
	ContactWeight      float64 `yaml:"contact_weight" mapstructure:"contact_weight"`
	CompletenessWeight float64 `yaml:"completeness_weight" mapstructure:"completeness_weight"`
	EngagementWeight   float64 `yaml:"engagement_weight" mapstructure:"engagement_weight"`

	// Categorical lookup tables, each mapping a label to a weight in [0,1].
	IndustryWeights map[string]float64 `yaml:"industry_weights" mapstructure:"industry_weights"`
	SizeWeights     map[string]float64 `yaml:"size_weights" mapstructure:"size_weights"`
	RevenueWeights  map[string]float64 `yaml:"revenue_weights" mapstructure:"revenue_weights"`

	// Fallback weights for labels missing from the tables.
	DefaultIndustryWeight float64 `yaml:"default_industry_weight" mapstructure:"default_industry_weight"`
	DefaultSizeWeight     float64 `yaml:"default_size_weight" mapstructure:"default_size_weight"`
	DefaultRevenueWeight  float64 `yaml:"default_revenue_weight" mapstructure:"default_revenue_weight"`

	// Engagement signal tables.
	GrowthIndustries []string `yaml:"growth_industries" mapstructure:"growth_industries"`
	GrowthStageSizes []string `yaml:"growth_stage_sizes" mapstructure:"growth_stage_sizes"`

	// Decimal places for the final lead score.
	Precision int `yaml:"precision" mapstructure:"precision"`
}

// ValidationConfig configures the field validator.
type ValidationConfig struct {
	// Region used when a phone number has no international prefix.
	DefaultRegion string `yaml:"default_region" mapstructure:"default_region"`
	// Domains considered personal rather than corporate email hosts.
	FreeEmailDomains []string `yaml:"free_email_domains" mapstructure:"free_email_domains"`
	// Local parts that indicate a role inbox rather than a person.
	RoleLocalParts []string `yaml:"role_local_parts" mapstructure:"role_local_parts"`
}

// DedupeConfig configures duplicate detection.
type DedupeConfig struct {
	// Similarity at or above which two leads are probable duplicates.
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// IngestConfig configures tabular lead ingestion.
type IngestConfig struct {
	// HeaderAliases maps canonical field keys to accepted column headers.
	// Empty means the built-in alias table applies.
	HeaderAliases map[string][]string `yaml:"header_aliases" mapstructure:"header_aliases"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("dedupe.threshold", 0.85)
	v.SetDefault("validation.default_region", "US")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// LoadWeightsFile reads a standalone scoring-weights YAML file. It returns
// only the fields the file sets; callers merge it over the active config.
func LoadWeightsFile(path string) (ScoringConfig, error) {
	var sc ScoringConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, eris.Wrapf(err, "config: read weights file %s", path)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, eris.Wrapf(err, "config: parse weights file %s", path)
	}
	return sc, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
