package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-weather-url weather API base URL
//	-weather-key weather API key
//	-request-timeout weather request timeout (e.g., "10s", "1m")
//	-weather-refresh weather cache refresh interval (e.g., "15m")
//	-language default UI language label
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var weatherBaseURL string
	var weatherAPIKey string
	var requestTimeout time.Duration
	var weatherRefreshInterval time.Duration
	var defaultLanguage string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&weatherBaseURL, "weather-url", "", "Weather API base URL")
	flag.StringVar(&weatherAPIKey, "weather-key", "", "Weather API key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.DurationVar(&weatherRefreshInterval, "weather-refresh", 0, "Weather refresh interval (e.g., 15m)")
	flag.StringVar(&defaultLanguage, "language", "", "Default UI language")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DefaultLanguage: defaultLanguage,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			WeatherBaseURL: weatherBaseURL,
			WeatherAPIKey:  weatherAPIKey,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			WeatherRefreshInterval: weatherRefreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
