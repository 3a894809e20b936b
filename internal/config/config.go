package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	Port     int    `envconfig:"APP_PORT" default:"8080"`
	DB       DBConfig
	RapidAPI RapidAPIConfig
	YouTube  YouTubeConfig
	Redis    RedisConfig
	Limiter  RateLimiterConfig
	CORS     CORSConfig
}

// database configuration
type DBConfig struct {
	DSN         string        `envconfig:"DATABASE_URL" required:"true"`
	MaxConns    int           `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLife time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// RapidAPI configuration: one key shared across the per-resource hosts
type RapidAPIConfig struct {
	Key         string        `envconfig:"RAPIDAPI_KEY" required:"true"`
	JSearchHost string        `envconfig:"RAPIDAPI_JSEARCH_HOST" default:"jsearch.p.rapidapi.com"`
	MovieHost   string        `envconfig:"RAPIDAPI_MOVIE_HOST" default:"search-movies-api.p.rapidapi.com"`
	YouTubeHost string        `envconfig:"RAPIDAPI_YOUTUBE_HOST" default:"youtube-media-downloader.p.rapidapi.com"`
	Timeout     time.Duration `envconfig:"RAPIDAPI_TIMEOUT" default:"30s"`
	// Streaming downloads get a longer deadline than metadata calls.
	DownloadTimeout time.Duration `envconfig:"RAPIDAPI_DOWNLOAD_TIMEOUT" default:"10m"`
}

// YouTube feature flag; when false the youtube routes are not registered
type YouTubeConfig struct {
	Enabled bool `envconfig:"YOUTUBE_ENABLED" default:"false"`
}

// redis cache for external search payloads; empty addr disables caching
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

// rate limiting configuration
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.RapidAPI.Timeout <= 0 {
		return fmt.Errorf("RAPIDAPI_TIMEOUT must be positive")
	}
	if c.RapidAPI.DownloadTimeout <= 0 {
		return fmt.Errorf("RAPIDAPI_DOWNLOAD_TIMEOUT must be positive")
	}
	if c.RapidAPI.JSearchHost == "" || c.RapidAPI.MovieHost == "" {
		return fmt.Errorf("RapidAPI hosts must not be empty")
	}
	if c.YouTube.Enabled && c.RapidAPI.YouTubeHost == "" {
		return fmt.Errorf("RAPIDAPI_YOUTUBE_HOST is required when YOUTUBE_ENABLED is true")
	}
	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CacheEnabled reports whether the redis search cache is configured
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DB.MaxConns=%d, YouTube.Enabled=%t, "+
		"Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t, Cache=%t, "+
		"RapidAPI.Timeout=%s}",
		c.Env, c.Port, c.DB.MaxConns, c.YouTube.Enabled,
		c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled, c.CacheEnabled(),
		c.RapidAPI.Timeout)
}
