package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"APP_ENV", "HTTP_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "REVIEW_SOURCE",
	"HOSTAWAY_BASE_URL", "HOSTAWAY_ACCESS_TOKEN", "HOSTAWAY_TIMEOUT",
	"ADMIN_TOKEN", "JWT_SECRET", "ADMIN_TOKEN_TTL",
}

// clearEnv обнуляет переменные, которые могут прийти из окружения CI.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_DevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SourceFixture, cfg.ReviewSource)
	assert.Equal(t, 10*time.Second, cfg.HostawayTimeout)
	assert.Equal(t, 12*time.Hour, cfg.AdminTokenTTL)
	assert.Equal(t, devAdminToken, cfg.AdminToken)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestFromEnv_Origins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestFromEnv_Production(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "short admin token",
			env:     map[string]string{"ADMIN_TOKEN": "short", "CORS_ALLOWED_ORIGINS": "https://a.example.com"},
			wantErr: "ADMIN_TOKEN",
		},
		{
			name:    "missing origins",
			env:     map[string]string{"ADMIN_TOKEN": strings.Repeat("x", 16)},
			wantErr: "CORS_ALLOWED_ORIGINS",
		},
		{
			name: "short jwt secret",
			env: map[string]string{
				"ADMIN_TOKEN":          strings.Repeat("x", 16),
				"CORS_ALLOWED_ORIGINS": "https://a.example.com",
				"JWT_SECRET":           "short",
			},
			wantErr: "JWT_SECRET",
		},
		{
			name: "valid",
			env: map[string]string{
				"ADMIN_TOKEN":          strings.Repeat("x", 16),
				"CORS_ALLOWED_ORIGINS": "https://a.example.com",
				"JWT_SECRET":           strings.Repeat("s", 32),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", EnvProduction)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := FromEnv()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, cfg.IsProduction())
		})
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"APP_ENV", "staging", "APP_ENV"},
		{"REVIEW_SOURCE", "postgres", "REVIEW_SOURCE"},
		{"REVIEW_SOURCE", "hostaway", "HOSTAWAY_ACCESS_TOKEN"},
		{"HOSTAWAY_TIMEOUT", "soon", "HOSTAWAY_TIMEOUT"},
		{"ADMIN_TOKEN_TTL", "-1h", "ADMIN_TOKEN_TTL"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromEnv_Hostaway(t *testing.T) {
	clearEnv(t)
	t.Setenv("REVIEW_SOURCE", "Hostaway")
	t.Setenv("HOSTAWAY_ACCESS_TOKEN", "vendor-token")
	t.Setenv("HOSTAWAY_TIMEOUT", "3s")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, SourceHostaway, cfg.ReviewSource)
	assert.Equal(t, 3*time.Second, cfg.HostawayTimeout)
}
