package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/kisaanlabs/kisaan-setu/internal/adapter"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/store"
	"github.com/kisaanlabs/kisaan-setu/models"
)

// keyWeatherCache holds the last successfully fetched report so the app can
// still show weather when the provider is unreachable.
const keyWeatherCache = "weatherCache"

const (
	sourceCached   = "cached"
	sourceFallback = "fallback"
)

type weatherService struct {
	weather adapter.WeatherAdapter
	kv      store.KVStore
	logger  *logger.Logger
}

func NewWeatherService(weatherAdapter adapter.WeatherAdapter, kv store.KVStore, logger *logger.Logger) WeatherService {
	return &weatherService{weather: weatherAdapter, kv: kv, logger: logger}
}

func (w *weatherService) ReportByCity(ctx context.Context, city string) models.WeatherReport {
	report, err := w.weather.ReportByCity(ctx, city)
	if err != nil {
		return w.fallback(ctx, err)
	}
	return w.finish(ctx, report)
}

func (w *weatherService) ReportByCoordinates(ctx context.Context, lat, lon float64) models.WeatherReport {
	report, err := w.weather.ReportByCoordinates(ctx, lat, lon)
	if err != nil {
		return w.fallback(ctx, err)
	}
	return w.finish(ctx, report)
}

// finish derives the farming advice and caches the completed report.
func (w *weatherService) finish(ctx context.Context, report models.WeatherReport) models.WeatherReport {
	report.Advice = deriveFarmingAdvice(report)

	data, err := json.Marshal(report)
	if err == nil {
		err = w.kv.Write(ctx, keyWeatherCache, string(data))
	}
	if err != nil {
		// a stale cache is acceptable, the fresh report is still returned
		w.logger.Err(err).Str("func", "finish").Msg("error caching weather report")
	}

	return report
}

// fallback serves the cached report, or the built-in demo report when no
// cache exists. The provider error is logged, not returned: the caller can
// tell from Source that the data is not live.
func (w *weatherService) fallback(ctx context.Context, cause error) models.WeatherReport {
	w.logger.Err(cause).Str("func", "fallback").Msg("weather provider failed, serving fallback")

	raw, err := w.kv.Read(ctx, keyWeatherCache)
	if err == nil {
		var cached models.WeatherReport
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			cached.Source = sourceCached
			return cached
		}
		w.logger.Err(err).Str("func", "fallback").Msg("error decoding cached weather report")
	}

	return demoWeatherReport()
}

// deriveFarmingAdvice turns raw conditions into field-work guidance.
func deriveFarmingAdvice(report models.WeatherReport) models.FarmingAdvice {
	temp := report.Current.Temperature
	humidity := report.Current.Humidity
	windSpeed := report.Current.WindSpeed
	condition := strings.ToLower(report.Condition)

	advice := models.FarmingAdvice{
		CropSuitability:       "Good conditions for most crops",
		IrrigationNeeded:      false,
		PestRisk:              "Low",
		HarvestRecommendation: "Suitable for field activities",
	}

	switch {
	case temp > 35:
		advice.CropSuitability = "Very hot - provide shade for sensitive crops"
		advice.IrrigationNeeded = true
		advice.HarvestRecommendation = "Avoid midday field work, work early morning/evening"
	case temp > 30:
		advice.CropSuitability = "Warm weather - good for heat-tolerant crops"
		advice.IrrigationNeeded = true
	case temp < 5:
		advice.CropSuitability = "Very cold - protect crops from frost damage"
		advice.HarvestRecommendation = "Limited outdoor activities recommended"
	case temp < 15:
		advice.CropSuitability = "Cool weather - good for winter crops"
	}

	if humidity > 85 {
		advice.PestRisk = "High"
		advice.CropSuitability = "High humidity - monitor for fungal diseases"
	} else if humidity < 30 {
		advice.IrrigationNeeded = true
		advice.CropSuitability = "Low humidity - increase irrigation frequency"
	}

	switch condition {
	case "rain", "drizzle":
		advice.IrrigationNeeded = false
		advice.HarvestRecommendation = "Avoid pesticide application, good for natural irrigation"
		advice.PestRisk = "Medium"
	case "thunderstorm":
		advice.HarvestRecommendation = "Avoid all field activities, secure equipment"
		advice.PestRisk = "Medium"
	case "clear":
		advice.HarvestRecommendation = "Excellent weather for harvesting and field work"
	case "clouds":
		advice.HarvestRecommendation = "Good conditions for transplanting - reduced sun stress"
	case "snow":
		advice.CropSuitability = "Protect crops from snow damage"
		advice.HarvestRecommendation = "Indoor activities only"
	}

	if windSpeed > 10 {
		advice.HarvestRecommendation = "Strong winds - avoid spraying operations"
	}

	return advice
}

// demoWeatherReport is served on a fresh install with no network.
func demoWeatherReport() models.WeatherReport {
	report := models.WeatherReport{
		Location: models.WeatherLocation{
			Name:    "Demo Location",
			Country: "IN",
			Lat:     12.9716,
			Lon:     77.5946,
		},
		Current: models.CurrentConditions{
			Temperature:   28,
			FeelsLike:     32,
			Humidity:      65,
			Pressure:      1013,
			WindSpeed:     3.5,
			WindDirection: 180,
			Visibility:    10,
			Description:   "Clear sky",
			Icon:          "01d",
		},
		Condition: "Clear",
		Forecast: []models.ForecastEntry{
			{
				Date:        time.Now().Add(24 * time.Hour),
				TempMin:     24,
				TempMax:     30,
				Humidity:    60,
				WindSpeed:   4.0,
				Description: "Partly cloudy",
				Icon:        "02d",
			},
		},
		Source:    sourceFallback,
		Timestamp: time.Now(),
	}
	report.Advice = deriveFarmingAdvice(report)
	return report
}
