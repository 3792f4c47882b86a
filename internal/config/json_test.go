package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings ("10s") or nanosecond numbers.
	jsonBody := `{
		"app": {
			"default_language": "Gujarati"
		},
		"adapter": {
			"weather_base_url": "https://api.openweathermap.org/data/2.5",
			"weather_api_key": "owm_secret",
			"request_timeout": "10s"
		},
		"workers": {
			"weather_refresh_interval": "15m"
		},
		"storage": {
			"db": { "dsn": "/var/lib/kisaan-setu/app.db" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Gujarati", cfg.App.DefaultLanguage)

	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Adapter.WeatherBaseURL)
	assert.Equal(t, "owm_secret", cfg.Adapter.WeatherAPIKey)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 15*time.Minute, cfg.Workers.WeatherRefreshInterval)

	assert.Equal(t, "/var/lib/kisaan-setu/app.db", cfg.Storage.DB.DSN)

	// JSONFilePath is never populated from the file itself.
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// 10 seconds expressed as nanoseconds.
	jsonBody := `{"adapter": {"request_timeout": 10000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("/definitely/not/there.json")
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": "soon"}}`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}
