package config

import (
	"strings"
	"time"
)

// BackendConfig contains configuration for the external backend API that
// owns all business data (users, tickets, budgets, projects, documents).
type BackendConfig struct {
	// BaseURL is the backend API base URL, e.g. "https://api.espacosmart.com.br".
	BaseURL string `env:"BACKEND_URL,required"`

	// Timeout bounds every outbound backend call. The upstream frontend left
	// these calls unbounded; a hung backend should fail the request into the
	// normal fallback-redirect path instead of pinning it forever.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// AssetBaseURL is the image/asset host used by presentation templates
	// (user photos, document links). Not involved in any trust decision.
	AssetBaseURL string `env:"ASSET_BASE_URL" envDefault:""`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(b.BaseURL, "/")
	b.AssetBaseURL = strings.TrimRight(b.AssetBaseURL, "/")
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
}

// RedisConfig contains Redis configuration for the lookup cache.
// The cache is optional: an empty Addr disables it entirely.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// LookupTTL is the TTL for cached lookup tables (e.g. SAC ticket types).
	LookupTTL time.Duration `env:"LOOKUP_TTL" envDefault:"5m"`
}
