package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/mock"
	"github.com/kisaanlabs/kisaan-setu/internal/service"
	"github.com/kisaanlabs/kisaan-setu/models"
)

func TestWeatherService_PassesCityToAdapterAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	weatherAdapter := mock.NewMockWeatherAdapter(ctrl)
	kv := mock.NewMockKVStore(ctrl)

	report := models.WeatherReport{
		Location:  models.WeatherLocation{Name: "Ludhiana", Country: "IN"},
		Current:   models.CurrentConditions{Temperature: 33, Humidity: 40},
		Condition: "Clear",
		Source:    "openweathermap",
	}

	weatherAdapter.EXPECT().ReportByCity(gomock.Any(), "Ludhiana").Return(report, nil)
	kv.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewWeatherService(weatherAdapter, kv, logger.Nop())
	got := svc.ReportByCity(context.Background(), "Ludhiana")

	assert.Equal(t, "Ludhiana", got.Location.Name)
	assert.True(t, got.Advice.IrrigationNeeded, "hot dry weather needs irrigation")
}
