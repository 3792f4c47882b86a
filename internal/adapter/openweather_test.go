package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
)

const currentWeatherBody = `{
	"name": "Pune",
	"coord": {"lat": 18.52, "lon": 73.86},
	"sys": {"country": "IN"},
	"main": {"temp": 31.6, "feels_like": 33.2, "humidity": 48, "pressure": 1009},
	"wind": {"speed": 4.2, "deg": 230},
	"visibility": 8000,
	"weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}]
}`

const forecastBody = `{
	"list": [
		{
			"dt": 1756450800,
			"main": {"temp_min": 24.1, "temp_max": 29.8, "humidity": 55},
			"wind": {"speed": 3.1},
			"weather": [{"description": "few clouds", "icon": "02d"}]
		},
		{
			"dt": 1756461600,
			"main": {"temp_min": 23.4, "temp_max": 28.2, "humidity": 61},
			"wind": {"speed": 2.8},
			"weather": [{"description": "scattered clouds", "icon": "03d"}]
		}
	]
}`

func newTestAdapter(t *testing.T, handler http.HandlerFunc) WeatherAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.ClientAdapter{
		WeatherBaseURL: srv.URL,
		WeatherAPIKey:  "test-key",
		RequestTimeout: 2 * time.Second,
	}

	a, err := NewOpenWeatherAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewOpenWeatherAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewOpenWeatherAdapter(config.ClientAdapter{WeatherBaseURL: ""}, logger.Nop())
	require.Error(t, err)
}

func TestReportByCity_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Pune", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/weather":
			w.Write([]byte(currentWeatherBody))
		case "/forecast":
			w.Write([]byte(forecastBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	report, err := a.ReportByCity(context.Background(), "Pune")
	require.NoError(t, err)

	assert.Equal(t, "Pune", report.Location.Name)
	assert.Equal(t, "IN", report.Location.Country)
	assert.Equal(t, 32, report.Current.Temperature, "temperature is rounded")
	assert.Equal(t, 33, report.Current.FeelsLike)
	assert.Equal(t, 48, report.Current.Humidity)
	assert.Equal(t, 8.0, report.Current.Visibility, "visibility in km")
	assert.Equal(t, "clear sky", report.Current.Description)
	assert.Equal(t, "Clear", report.Condition)
	assert.Equal(t, "openweathermap", report.Source)

	require.Len(t, report.Forecast, 2)
	assert.Equal(t, 30, report.Forecast[0].TempMax)
	assert.Equal(t, "few clouds", report.Forecast[0].Description)
}

func TestReportByCoordinates_SendsLatLon(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "18.52", r.URL.Query().Get("lat"))
		assert.Equal(t, "73.86", r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/weather" {
			w.Write([]byte(currentWeatherBody))
		} else {
			w.Write([]byte(forecastBody))
		}
	})

	_, err := a.ReportByCoordinates(context.Background(), 18.52, 73.86)
	require.NoError(t, err)
}

func TestReportByCity_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "invalid key", status: http.StatusUnauthorized, wantErr: ErrInvalidAPIKey},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "unknown city", status: http.StatusNotFound, wantErr: ErrLocationNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrWeatherUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := a.ReportByCity(context.Background(), "Nowhere")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReportByCity_ForecastIsCapped(t *testing.T) {
	long := `{"list": [`
	for i := 0; i < 12; i++ {
		if i > 0 {
			long += ","
		}
		long += `{"dt": 1756450800, "main": {"temp_min": 20, "temp_max": 25, "humidity": 50}, "wind": {"speed": 2}, "weather": [{"description": "clear", "icon": "01d"}]}`
	}
	long += `]}`

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/weather" {
			w.Write([]byte(currentWeatherBody))
		} else {
			w.Write([]byte(long))
		}
	})

	report, err := a.ReportByCity(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Len(t, report.Forecast, forecastEntries)
}
