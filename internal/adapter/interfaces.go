// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

// Package adapter provides transport-layer abstractions for fetching weather
// data from external providers.
//
// The primary abstraction is [WeatherAdapter], which decouples the service
// layer from the underlying provider. The package currently ships an
// OpenWeatherMap implementation ([NewOpenWeatherAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for provider-agnostic error
// handling (e.g. [ErrInvalidAPIKey] for 401, [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/kisaanlabs/kisaan-setu/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/weather_adapter_mock.go -package=mock

// WeatherAdapter fetches current conditions and the near-term forecast for a
// location. Implementations fill Location, Current, Forecast and Source of
// the returned report; derived fields such as farming advice are the service
// layer's responsibility.
type WeatherAdapter interface {
	// ReportByCity resolves the location by city name.
	ReportByCity(ctx context.Context, city string) (models.WeatherReport, error)

	// ReportByCoordinates resolves the location by geographic coordinates.
	ReportByCoordinates(ctx context.Context, lat, lon float64) (models.WeatherReport, error)
}
