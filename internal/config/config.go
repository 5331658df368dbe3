package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Nominatim  NominatimConfig  `mapstructure:"nominatim"`
	Overpass   OverpassConfig   `mapstructure:"overpass"`
	Enrichment EnrichmentConfig `mapstructure:"enrichment"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type NominatimConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	UserAgent      string  `mapstructure:"user_agent"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

type OverpassConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	RadiusMeters   int    `mapstructure:"radius_meters"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// EnrichmentConfig selects and configures the generative text backend.
// Provider may be "gemini", "openai", or "none".
type EnrichmentConfig struct {
	Provider       string `mapstructure:"provider"`
	GeminiAPIKey   string `mapstructure:"gemini_api_key"`
	GeminiModel    string `mapstructure:"gemini_model"`
	OpenAIAPIKey   string `mapstructure:"openai_api_key"`
	OpenAIModel    string `mapstructure:"openai_model"`
	Geometry       bool   `mapstructure:"geometry"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (e EnrichmentConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional yaml file and MAPMIND_*
// environment variables, applying defaults for everything else.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("nominatim.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("nominatim.user_agent", "MapMind/1.0")
	v.SetDefault("nominatim.rate_limit", 1.0)
	v.SetDefault("nominatim.timeout_seconds", 10)
	v.SetDefault("overpass.base_url", "https://overpass-api.de/api/interpreter")
	v.SetDefault("overpass.radius_meters", 1500)
	v.SetDefault("overpass.timeout_seconds", 300)
	v.SetDefault("enrichment.provider", "gemini")
	// Secrets default to empty so the env override is registered with viper;
	// AutomaticEnv only surfaces known keys.
	v.SetDefault("enrichment.gemini_api_key", "")
	v.SetDefault("enrichment.gemini_model", "gemini-2.0-flash")
	v.SetDefault("enrichment.openai_api_key", "")
	v.SetDefault("enrichment.openai_model", "")
	v.SetDefault("enrichment.geometry", false)
	v.SetDefault("enrichment.timeout_seconds", 60)
	v.SetDefault("log.level", "info")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig()

	// Env override: MAPMIND_ENRICHMENT_GEMINI_API_KEY etc.
	v.SetEnvPrefix("MAPMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	switch cfg.Enrichment.Provider {
	case "gemini", "openai", "none":
	default:
		return nil, fmt.Errorf("config: unknown enrichment provider %q", cfg.Enrichment.Provider)
	}

	return &cfg, nil
}
