package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_Defaults(t *testing.T) {
	cfg := AppConfig{}
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
}

func TestSanitize_TrimsTrailingSlashes(t *testing.T) {
	cfg := AppConfig{}
	cfg.Backend.BaseURL = "https://api.espacosmart.com.br/"
	cfg.Backend.AssetBaseURL = "https://cdn.espacosmart.com.br//"
	cfg.Sanitize()

	assert.Equal(t, "https://api.espacosmart.com.br", cfg.Backend.BaseURL)
	assert.Equal(t, "https://cdn.espacosmart.com.br", cfg.Backend.AssetBaseURL)
}

func TestSanitize_NonPositiveTimeoutFallsBack(t *testing.T) {
	cfg := AppConfig{}
	cfg.Backend.Timeout = -time.Second
	cfg.Sanitize()

	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
}

func TestDetectDevMode_FromNodeEnv(t *testing.T) {
	tests := []struct {
		nodeEnv string
		want    bool
	}{
		{nodeEnv: "development", want: true},
		{nodeEnv: "DEVELOPMENT", want: true},
		{nodeEnv: "dev", want: true},
		{nodeEnv: "production", want: false},
		{nodeEnv: "", want: false},
	}

	for _, tt := range tests {
		t.Run("NODE_ENV="+tt.nodeEnv, func(t *testing.T) {
			t.Setenv("NODE_ENV", tt.nodeEnv)
			cfg := AppConfig{}
			cfg.Sanitize()
			assert.Equal(t, tt.want, cfg.IsDev)
		})
	}
}

func TestDetectDevMode_ExplicitDevWins(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	cfg := AppConfig{IsDev: true}
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)
}
