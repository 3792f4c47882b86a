package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a setting is absent from every
// configuration source.
const (
	defaultDSN                    = "kisaan-setu.db"
	defaultWeatherBaseURL         = "https://api.openweathermap.org/data/2.5"
	defaultRequestTimeout         = 10 * time.Second
	defaultWeatherRefreshInterval = 15 * time.Minute
	defaultLanguage               = "Hindi"
)

// ClientApp holds application-level settings derived from the shared
// structured config.
type ClientApp struct {
	// DefaultLanguage is preselected on the registration form.
	DefaultLanguage string
}

// ClientAdapter holds network settings used by the weather adapter.
type ClientAdapter struct {
	// WeatherBaseURL is the weather API base URL.
	WeatherBaseURL string
	// WeatherAPIKey authenticates weather API requests. May be empty.
	WeatherAPIKey string
	// RequestTimeout is the default timeout for outbound weather requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// WeatherRefreshInterval defines how often the weather cache is refreshed.
	WeatherRefreshInterval time.Duration
}

// ClientConfig is the top-level application configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Adapter contains weather API addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the application config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the application runtime, fills in defaults for anything left
// unset, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultLanguage: cfg.App.DefaultLanguage,
		},
		Adapter: ClientAdapter{
			WeatherBaseURL: cfg.Adapter.WeatherBaseURL,
			WeatherAPIKey:  cfg.Adapter.WeatherAPIKey,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{WeatherRefreshInterval: cfg.Workers.WeatherRefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Adapter.WeatherBaseURL == "" {
		cfg.Adapter.WeatherBaseURL = defaultWeatherBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.WeatherRefreshInterval == 0 {
		cfg.Workers.WeatherRefreshInterval = defaultWeatherRefreshInterval
	}
	if cfg.App.DefaultLanguage == "" {
		cfg.App.DefaultLanguage = defaultLanguage
	}
}
