package adapter

import "errors"

var (
	ErrInvalidAPIKey      = errors.New("weather api key is invalid or expired")
	ErrRateLimited        = errors.New("weather api rate limit exceeded")
	ErrLocationNotFound   = errors.New("weather location not found")
	ErrWeatherUnavailable = errors.New("weather provider unavailable")
)
