// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/service"
	"github.com/kisaanlabs/kisaan-setu/internal/tui"
	"github.com/kisaanlabs/kisaan-setu/internal/workers"
)

// App is the application runtime. It owns the UI, the services and the
// background workers and drives them through the process lifecycle.
type App struct {
	services *service.Services
	ui       *tui.TUI
	workers  *workers.Workers
	refresh  *workers.WeatherRefreshWorker
	logger   *logger.Logger
}

// NewApp assembles the runtime from already-constructed parts.
func NewApp(services *service.Services, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || log == nil {
		return nil, errors.New("client.NewApp: nil dependency")
	}

	refresh := workers.NewWeatherRefreshWorker(
		services.AuthService,
		services.WeatherService,
		workersCfg.WeatherRefreshInterval,
		log.GetChildLogger(),
	)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(refresh),
		refresh:  refresh,
		logger:   log,
	}, nil
}

// Run starts the application and blocks until the user quits.
//
// Initialization failure is fatal and visible; the application never starts
// over a store it could not load. A restored session skips the login flow
// entirely, a sign-out loops back to it.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.AuthService.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize session: %w", err)
	}

	a.workers.Run()
	defer a.refresh.Stop()

	user, restored := a.services.AuthService.CurrentUser()

	for {
		if !restored {
			var err error
			user, err = a.ui.LoginFlow(ctx)
			if err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}
		restored = false

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("func", "Run").Msg("signed out, returning to login")
	}
}
