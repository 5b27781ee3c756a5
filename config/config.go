package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server          ServerConfig
	OpenAI          OpenAIConfig
	Catalog         CatalogConfig
	Recommendations RecommendationsConfig
	Cache           CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenAIConfig holds OpenAI API configuration
type OpenAIConfig struct {
	APIKey            string `mapstructure:"api_key"`
	BaseURL           string `mapstructure:"base_url"`
	Model             string `mapstructure:"model"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
}

// CatalogConfig holds product catalog configuration
type CatalogConfig struct {
	CSVPath        string `mapstructure:"csv_path"`
	Watch          bool   `mapstructure:"watch"`
	ProductBaseURL string `mapstructure:"product_base_url"`
}

// RecommendationsConfig holds recommendation engine configuration
type RecommendationsConfig struct {
	TopK               int  `mapstructure:"top_k"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds analysis cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/mousify/")

	// Environment variable settings
	v.SetEnvPrefix("MOUSIFY")
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
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// OpenAI defaults
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o")
	v.SetDefault("openai.requests_per_minute", 60)

	// Catalog defaults
	v.SetDefault("catalog.csv_path", "./data/products.csv")
	v.SetDefault("catalog.watch", true)
	v.SetDefault("catalog.product_base_url", "https://mousify.lt/products/")

	// Recommendation defaults
	v.SetDefault("recommendations.top_k", 6)
	v.SetDefault("recommendations.enable_debug_logging", false)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OpenAI.APIKey == "" {
		return fmt.Errorf("OpenAI API key is required (set MOUSIFY_OPENAI_API_KEY)")
	}

	if config.Catalog.CSVPath == "" {
		return fmt.Errorf("catalog CSV path must not be empty")
	}

	if config.Recommendations.TopK <= 0 {
		return fmt.Errorf("recommendations top_k must be positive, got: %d", config.Recommendations.TopK)
	}

	return nil
}
