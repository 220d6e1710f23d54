package config

import (
	"time"

	"github.com/spf13/viper"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Config holds the application configuration.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	SiteBaseURL string `mapstructure:"SITE_BASE_URL"`
	APIBaseURL  string `mapstructure:"API_BASE_URL"`

	UserAgent          string  `mapstructure:"USER_AGENT"`
	FetchMode          string  `mapstructure:"FETCH_MODE"`
	FetchTimeoutSecs   int     `mapstructure:"FETCH_TIMEOUT_SECONDS"`
	FetchRatePerSecond float64 `mapstructure:"FETCH_RATE_PER_SECOND"`

	CacheTTLSecs        int `mapstructure:"CACHE_TTL_SECONDS"`
	CatalogCacheTTLSecs int `mapstructure:"CATALOG_CACHE_TTL_SECONDS"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	PostgresURL string `mapstructure:"POSTGRES_URL"`

	WarmWorkers  int    `mapstructure:"WARM_WORKERS"`
	WarmOnStart  bool   `mapstructure:"WARM_ON_START"`
	WarmSchedule string `mapstructure:"WARM_SCHEDULE"`
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// The .env file is optional; production configures through the environment.
	_ = v.ReadInConfig()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SITE_BASE_URL", "https://mbico.ir")
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("USER_AGENT", defaultUserAgent)
	v.SetDefault("FETCH_MODE", "http")
	v.SetDefault("FETCH_TIMEOUT_SECONDS", 30)
	v.SetDefault("FETCH_RATE_PER_SECOND", 0)
	v.SetDefault("CACHE_TTL_SECONDS", 1800)
	v.SetDefault("CATALOG_CACHE_TTL_SECONDS", 1800)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("WARM_WORKERS", 2)
	v.SetDefault("WARM_ON_START", false)
	v.SetDefault("WARM_SCHEDULE", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}

func (c *Config) CatalogCacheTTL() time.Duration {
	return time.Duration(c.CatalogCacheTTLSecs) * time.Second
}
