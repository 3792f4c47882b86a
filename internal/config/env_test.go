// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_DEFAULT_LANGUAGE": "Marathi",

		"ADAPTER_WEATHER_BASE_URL": "https://api.openweathermap.org/data/2.5",
		"ADAPTER_WEATHER_API_KEY":  "owm_secret",
		"ADAPTER_REQUEST_TIMEOUT":  "10s",

		"WORKERS_WEATHER_REFRESH_INTERVAL": "15m",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/kisaan-setu/app.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "Marathi", cfg.App.DefaultLanguage)

	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Adapter.WeatherBaseURL)
	assert.Equal(t, "owm_secret", cfg.Adapter.WeatherAPIKey)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 15*time.Minute, cfg.Workers.WeatherRefreshInterval)

	assert.Equal(t, "/var/lib/kisaan-setu/app.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_WEATHER_API_KEY": "owm_secret",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "owm_secret", cfg.Adapter.WeatherAPIKey)
	assert.Empty(t, cfg.Adapter.WeatherBaseURL)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.App.DefaultLanguage)
	assert.Zero(t, cfg.Workers.WeatherRefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	known := []string{
		"CONFIG",
		"APP_DEFAULT_LANGUAGE",
		"ADAPTER_WEATHER_BASE_URL",
		"ADAPTER_WEATHER_API_KEY",
		"ADAPTER_REQUEST_TIMEOUT",
		"WORKERS_WEATHER_REFRESH_INTERVAL",
		"STORAGE_DB_DATABASE_URI",
	}
	for _, k := range known {
		require.NoError(t, os.Unsetenv(k))
	}
}
