package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the pipeline
type Config struct {
	Pipeline   PipelineConfig
	Embedding  EmbeddingConfig
	Matching   MatchingConfig
	Enrichment EnrichmentConfig
}

// PipelineConfig holds input/output locations for a pipeline run
type PipelineConfig struct {
	ProductsCSV string `mapstructure:"products_csv"`
	SchemaJSON  string `mapstructure:"schema_json"`
	QueriesJSON string `mapstructure:"queries_json"`
	OutputDir   string `mapstructure:"output_dir"`
	Environment string `mapstructure:"environment"`
}

// EmbeddingConfig holds embedding backend configuration
type EmbeddingConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Model      string        `mapstructure:"model"`
	Dimensions int           `mapstructure:"dimensions"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RateLimit  float64       `mapstructure:"rate_limit"` // requests per second
	Burst      int           `mapstructure:"burst"`
}

// MatchingConfig holds the ranking weights and result size.
// The weights are tunable configuration, not invariants - only the
// combination rule (summation) is fixed.
type MatchingConfig struct {
	TopK                  int     `mapstructure:"top_k"`
	PriceMatchBoost       float64 `mapstructure:"price_match_boost"`
	PriceViolationPenalty float64 `mapstructure:"price_violation_penalty"`
	FeatureMatchBoost     float64 `mapstructure:"feature_match_boost"`
	IntentMatchBoost      float64 `mapstructure:"intent_match_boost"`
	EnableDebugLogging    bool    `mapstructure:"enable_debug_logging"`
}

// EnrichmentConfig holds the keyword dictionaries driving feature and intent
// extraction. Kept in configuration so recognized entries can be edited
// without code changes.
type EnrichmentConfig struct {
	BudgetThreshold      float64             `mapstructure:"budget_threshold"`
	MaxTitleLength       int                 `mapstructure:"max_title_length"`
	MaxDescriptionLength int                 `mapstructure:"max_description_length"`
	Materials            []string            `mapstructure:"materials"`
	Colors               []string            `mapstructure:"colors"`
	IntentKeywords       map[string][]string `mapstructure:"intent_keywords"`
	CategoryIntents      map[string][]string `mapstructure:"category_intents"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopgraph/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Pipeline defaults
	v.SetDefault("pipeline.products_csv", "data/input/raw_products.csv")
	v.SetDefault("pipeline.schema_json", "data/input/ai_schema.json")
	v.SetDefault("pipeline.queries_json", "data/input/ai_queries.json")
	v.SetDefault("pipeline.output_dir", "data/output")
	v.SetDefault("pipeline.environment", "development")

	// Embedding defaults
	v.SetDefault("embedding.base_url", "http://localhost:11434")
	v.SetDefault("embedding.model", "all-minilm")
	v.SetDefault("embedding.dimensions", 384)
	v.SetDefault("embedding.timeout", "60s")
	v.SetDefault("embedding.rate_limit", 10.0)
	v.SetDefault("embedding.burst", 5)

	// Matching defaults
	v.SetDefault("matching.top_k", 10)
	v.SetDefault("matching.price_match_boost", 0.3)
	v.SetDefault("matching.price_violation_penalty", -0.2)
	v.SetDefault("matching.feature_match_boost", 0.1)
	v.SetDefault("matching.intent_match_boost", 0.1)
	v.SetDefault("matching.enable_debug_logging", false)

	// Enrichment defaults - the recognized keyword dictionaries
	v.SetDefault("enrichment.budget_threshold", 30.0)
	v.SetDefault("enrichment.max_title_length", 150)
	v.SetDefault("enrichment.max_description_length", 500)
	v.SetDefault("enrichment.materials", []string{"cotton", "organic", "denim", "wool"})
	v.SetDefault("enrichment.colors", []string{"white", "blue", "black"})
	v.SetDefault("enrichment.intent_keywords", map[string][]string{
		"affordable":   {"cheap", "budget", "value", "affordable", "under"},
		"summer":       {"summer", "light", "breathable", "cotton", "warm weather"},
		"eco_friendly": {"organic", "eco", "sustainable", "green"},
		"casual":       {"casual", "everyday", "basic", "comfortable", "daily"},
		"comfort":      {"comfortable", "soft", "cozy", "warm", "stretch"},
	})
	v.SetDefault("enrichment.category_intents", map[string][]string{
		"dress":   {"dress_shopping", "fashion", "style"},
		"hoodie":  {"cozy_wear", "casual_wear"},
		"sneaker": {"footwear", "active_wear"},
		"jacket":  {"outerwear", "cold_weather"},
		"t-shirt": {"casual_wear", "everyday_wear"},
	})
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Pipeline.ProductsCSV == "" {
		return fmt.Errorf("products CSV path is required (set SHOPGRAPH_PIPELINE_PRODUCTS_CSV)")
	}

	if config.Embedding.BaseURL == "" {
		return fmt.Errorf("embedding base URL is required (set SHOPGRAPH_EMBEDDING_BASE_URL)")
	}

	if config.Embedding.Dimensions <= 0 {
		return fmt.Errorf("embedding dimensions must be positive, got: %d", config.Embedding.Dimensions)
	}

	if config.Matching.TopK < 0 {
		return fmt.Errorf("matching top_k must not be negative, got: %d", config.Matching.TopK)
	}

	return nil
}
