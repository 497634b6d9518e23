package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T) (*Config, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.AutomaticEnv()

	return decode()
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		validate func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "defaults",
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "3001", cfg.Server.Port)
				assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, int64(10<<20), cfg.Server.MaxBodyBytes)
				assert.Equal(t, 180*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, "v19", cfg.GoogleAds.APIVersion)
				assert.Equal(t, time.Minute, cfg.GoogleAds.Timeout)
				assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
				assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
				assert.Equal(t, 0.7, cfg.Audit.Temperature)
				assert.Equal(t, 4000, cfg.Audit.MaxTokens)
				assert.Equal(t, "info", cfg.App.LogLevel)
			},
		},
		{
			name: "environment overrides",
			env: map[string]string{
				"PORT":               "8080",
				"ALLOWED_ORIGINS":    "https://app.example.com",
				"GOOGLE_ADS_TIMEOUT": "5s",
				"AUDIT_TEMPERATURE":  "0.2",
				"LOG_LEVEL":          "debug",
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "8080", cfg.Server.Port)
				assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, 5*time.Second, cfg.GoogleAds.Timeout)
				assert.Equal(t, 0.2, cfg.Audit.Temperature)
				assert.Equal(t, "debug", cfg.App.LogLevel)
			},
		},
		{
			name: "zero max tokens",
			env:  map[string]string{"AUDIT_MAX_TOKENS": "0"},
			validate: func(t *testing.T, cfg *Config, err error) {
				assert.Nil(t, cfg)
				assert.EqualError(t, err, "AUDIT_MAX_TOKENS must be at least 1, got 0")
			},
		},
		{
			name: "bad duration",
			env:  map[string]string{"OPENAI_TIMEOUT": "soon"},
			validate: func(t *testing.T, cfg *Config, err error) {
				assert.Nil(t, cfg)
				assert.ErrorContains(t, err, "decoding config")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := load(t)
			tt.validate(t, cfg, err)
		})
	}
}
