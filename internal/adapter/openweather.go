package adapter

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/utils"
	"github.com/kisaanlabs/kisaan-setu/models"
)

// forecastEntries limits the forecast to the next 24 hours of 3-hour steps.
const forecastEntries = 8

type openWeatherAdapter struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewOpenWeatherAdapter constructs an OpenWeatherMap implementation of
// [WeatherAdapter]. It normalises and validates the base URL from
// adapterCfg.WeatherBaseURL and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.WeatherBaseURL is empty or cannot be parsed
// as a valid URL.
func NewOpenWeatherAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (WeatherAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.WeatherBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid weather base url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &openWeatherAdapter{client: client, apiKey: adapterCfg.WeatherAPIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// owmCurrent mirrors the subset of the /weather response the app uses.
type owmCurrent struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
	Weather    []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// owmForecast mirrors the subset of the /forecast response the app uses.
type owmForecast struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// ReportByCity implements [WeatherAdapter]. It issues GET /weather and
// GET /forecast with q=city and combines both responses into one report.
func (a *openWeatherAdapter) ReportByCity(ctx context.Context, city string) (models.WeatherReport, error) {
	params := map[string]string{"q": city}
	return a.fetchReport(ctx, params)
}

// ReportByCoordinates implements [WeatherAdapter]. It issues GET /weather and
// GET /forecast with lat/lon and combines both responses into one report.
func (a *openWeatherAdapter) ReportByCoordinates(ctx context.Context, lat, lon float64) (models.WeatherReport, error) {
	params := map[string]string{
		"lat": strconv.FormatFloat(lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(lon, 'f', -1, 64),
	}
	return a.fetchReport(ctx, params)
}

func (a *openWeatherAdapter) fetchReport(ctx context.Context, params map[string]string) (models.WeatherReport, error) {
	var current owmCurrent
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("appid", a.apiKey).
		SetQueryParam("units", "metric").
		SetResult(&current).
		Get("/weather")
	if err != nil {
		a.logger.Err(err).Str("func", "fetchReport").Msg("current weather request failed")
		return models.WeatherReport{}, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WeatherReport{}, err
	}

	var forecast owmForecast
	resp, err = a.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("appid", a.apiKey).
		SetQueryParam("units", "metric").
		SetResult(&forecast).
		Get("/forecast")
	if err != nil {
		a.logger.Err(err).Str("func", "fetchReport").Msg("forecast request failed")
		return models.WeatherReport{}, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WeatherReport{}, err
	}

	return combineReport(current, forecast), nil
}

func combineReport(current owmCurrent, forecast owmForecast) models.WeatherReport {
	report := models.WeatherReport{
		Location: models.WeatherLocation{
			Name:    current.Name,
			Country: current.Sys.Country,
			Lat:     current.Coord.Lat,
			Lon:     current.Coord.Lon,
		},
		Current: models.CurrentConditions{
			Temperature:   int(math.Round(current.Main.Temp)),
			FeelsLike:     int(math.Round(current.Main.FeelsLike)),
			Humidity:      current.Main.Humidity,
			Pressure:      current.Main.Pressure,
			WindSpeed:     current.Wind.Speed,
			WindDirection: current.Wind.Deg,
			Visibility:    visibilityKm(current.Visibility),
			Description:   "",
			Icon:          "",
		},
		Source:    "openweathermap",
		Timestamp: time.Now(),
	}

	if len(current.Weather) > 0 {
		report.Current.Description = current.Weather[0].Description
		report.Current.Icon = current.Weather[0].Icon
		report.Condition = current.Weather[0].Main
	}

	entries := forecast.List
	if len(entries) > forecastEntries {
		entries = entries[:forecastEntries]
	}
	for _, item := range entries {
		entry := models.ForecastEntry{
			Date:      time.Unix(item.Dt, 0),
			TempMin:   int(math.Round(item.Main.TempMin)),
			TempMax:   int(math.Round(item.Main.TempMax)),
			Humidity:  item.Main.Humidity,
			WindSpeed: item.Wind.Speed,
		}
		if len(item.Weather) > 0 {
			entry.Description = item.Weather[0].Description
			entry.Icon = item.Weather[0].Icon
		}
		report.Forecast = append(report.Forecast, entry)
	}

	return report
}

// visibilityKm converts metres (10 km default when the provider omits it).
func visibilityKm(metres int) float64 {
	if metres == 0 {
		metres = 10000
	}
	return float64(metres) / 1000
}
