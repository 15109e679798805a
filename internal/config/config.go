// Package config holds the pipeline's environment-driven configuration.
// API keys and feature toggles come from the environment (with a .env file
// honored in development); policy constants carry defaults matching the
// production scrape schedule.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is populated once at startup and passed down explicitly; nothing
// reads the environment after Load returns.
type Config struct {
	DataDir string `env:"DATA_DIR" env-default:"public/events"`

	// Ticketmaster Discovery/Attractions API
	TMAPIKey string `env:"TM_API_KEY" env-default:""`
	UseTMAPI bool   `env:"USE_TM_API" env-default:"true"`

	// Spotify Web API (Client Credentials + Search)
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID" env-default:""`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET" env-default:""`
	SpotifySearchLimit  int    `env:"SPOTIFY_SEARCH_LIMIT" env-default:"50"`

	// Live Nation GraphQL API key (a public web key; overridable when rotated)
	LiveNationAPIKey string `env:"LIVE_NATION_API_KEY" env-default:"da2-jmvb5y2gjfcrrep3wzeumqwgaq"`

	// Policy windows. NewEventDays drives the is_new flag; StaleEventDays is
	// the display layer's removal-inference threshold, published for tooling.
	NewEventDays   int `env:"NEW_EVENT_DAYS" env-default:"5"`
	StaleEventDays int `env:"STALE_EVENT_DAYS" env-default:"3"`

	// CacheNegativeTTL expires negative enrichment-cache entries so missing
	// artists are eventually retried. Zero means negatives never expire.
	CacheNegativeTTL time.Duration `env:"CACHE_NEGATIVE_TTL" env-default:"0"`

	// RequestDelay is the cooperative inter-request sleep inside paginated
	// adapters.
	RequestDelay time.Duration `env:"REQUEST_DELAY" env-default:"400ms"`

	// Cloudflare R2 (S3-compatible) durable state store. All four must be
	// set for uploads/downloads; otherwise the run is local-only.
	R2AccountID       string `env:"R2_ACCOUNT_ID" env-default:""`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID" env-default:""`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY" env-default:""`
	R2Bucket          string `env:"R2_BUCKET" env-default:"atl-gigs-data"`
}

// FreshnessWindow returns NewEventDays as a duration.
func (c *Config) FreshnessWindow() time.Duration {
	return time.Duration(c.NewEventDays) * 24 * time.Hour
}

// StaleWindow returns StaleEventDays as a duration.
func (c *Config) StaleWindow() time.Duration {
	return time.Duration(c.StaleEventDays) * 24 * time.Hour
}

// R2Configured reports whether object-store credentials are present.
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != ""
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; a missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}
