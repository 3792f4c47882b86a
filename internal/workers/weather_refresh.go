// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package workers

import (
	"context"
	"time"

	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/service"
)

// WeatherRefreshWorker keeps the weather cache warm by periodically
// re-fetching the report for the signed-in user's farm location. When nobody
// is signed in a tick is skipped.
type WeatherRefreshWorker struct {
	auth     service.AuthService
	weather  service.WeatherService
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewWeatherRefreshWorker(auth service.AuthService, weather service.WeatherService, interval time.Duration, logger *logger.Logger) *WeatherRefreshWorker {
	return &WeatherRefreshWorker{
		auth:     auth,
		weather:  weather,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It spawns the refresh loop and returns
// immediately. A non-positive interval disables the worker.
func (w *WeatherRefreshWorker) Run() {
	if w.interval <= 0 {
		w.logger.Debug().Str("func", "Run").Msg("weather refresh disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.loop(ctx)
}

// Stop terminates the refresh loop and waits for it to exit. Safe to call
// when the worker never ran.
func (w *WeatherRefreshWorker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *WeatherRefreshWorker) loop(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *WeatherRefreshWorker) refresh(ctx context.Context) {
	user, signedIn := w.auth.CurrentUser()
	if !signedIn || user.Location == "" {
		return
	}

	report := w.weather.ReportByCity(ctx, user.Location)
	w.logger.Debug().Str("func", "refresh").Str("location", user.Location).Str("source", report.Source).Msg("weather cache refreshed")
}
