// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// kisaan-setu application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the default UI language.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds configuration for the weather API integration.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultLanguage is the UI language preselected on the registration
	// form. One of the supported locale labels; defaults to "Hindi".
	// Env: APP_DEFAULT_LANGUAGE
	DefaultLanguage string `env:"DEFAULT_LANGUAGE"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the local SQLite database settings.
type DB struct {
	// DSN is the SQLite file path (or ":memory:" for a throwaway store).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings for the OpenWeatherMap integration.
type Adapter struct {
	// WeatherBaseURL is the weather API base URL.
	// Env: ADAPTER_WEATHER_BASE_URL
	WeatherBaseURL string `env:"WEATHER_BASE_URL"`

	// WeatherAPIKey authenticates requests against the weather API.
	// When empty the weather screen reports the integration as disabled.
	// Env: ADAPTER_WEATHER_API_KEY
	WeatherAPIKey string `env:"WEATHER_API_KEY"`

	// RequestTimeout is the per-request timeout for outbound weather calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers contains background worker settings.
type Workers struct {
	// WeatherRefreshInterval defines how often the cached weather report
	// for the last requested location is refreshed in the background.
	// Env: WORKERS_WEATHER_REFRESH_INTERVAL
	WeatherRefreshInterval time.Duration `env:"WEATHER_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all supported sources.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
