// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package main

import (
	"context"
	"fmt"

	"github.com/kisaanlabs/kisaan-setu/internal/adapter"
	"github.com/kisaanlabs/kisaan-setu/internal/client"
	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/internal/service"
	"github.com/kisaanlabs/kisaan-setu/internal/store"
	"github.com/kisaanlabs/kisaan-setu/internal/tui"
	"github.com/kisaanlabs/kisaan-setu/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAppLogger("kisaan-setu")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	weatherAdapter, err := adapter.NewOpenWeatherAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create weather adapter")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, weatherAdapter, *cfg, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
