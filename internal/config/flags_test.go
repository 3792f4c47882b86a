package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests ParseFlags with various flag combinations
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-d", "/var/lib/kisaan-setu/app.db",
				"-weather-url", "https://api.openweathermap.org/data/2.5",
				"-weather-key", "owm_secret",
				"-request-timeout", "10s",
				"-weather-refresh", "15m",
				"-language", "Punjabi",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/var/lib/kisaan-setu/app.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Adapter.WeatherBaseURL)
				assert.Equal(t, "owm_secret", cfg.Adapter.WeatherAPIKey)
				assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 15*time.Minute, cfg.Workers.WeatherRefreshInterval)
				assert.Equal(t, "Punjabi", cfg.App.DefaultLanguage)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "subset of flags",
			args: []string{
				"-d", "app.db",
				"-weather-key", "secret",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "app.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "secret", cfg.Adapter.WeatherAPIKey)
				assert.Empty(t, cfg.Adapter.WeatherBaseURL)
				assert.Zero(t, cfg.Adapter.RequestTimeout)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.Adapter.WeatherBaseURL)
				assert.Empty(t, cfg.Adapter.WeatherAPIKey)
				assert.Empty(t, cfg.App.DefaultLanguage)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Zero(t, cfg.Adapter.RequestTimeout)
				assert.Zero(t, cfg.Workers.WeatherRefreshInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
