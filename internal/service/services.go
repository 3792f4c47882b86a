package service

import (
	"github.com/kisaanlabs/kisaan-setu/internal/adapter"
	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/store"
	"github.com/kisaanlabs/kisaan-setu/internal/validators"
)

type Services struct {
	AuthService       AuthService
	WeatherService    WeatherService
	CalculatorService CalculatorService
}

func NewServices(storages *store.Storages, weatherAdapter adapter.WeatherAdapter, cfg config.ClientConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages, validators.NewRegistrationValidator(), cfg.App, logger),
		WeatherService:    NewWeatherService(weatherAdapter, storages.KV, logger),
		CalculatorService: NewCalculatorService(),
	}
}
