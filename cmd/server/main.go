// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/handler"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/metrics"
	"github.com/MKhiriev/go-restaurant-directory/internal/objectstore"
	"github.com/MKhiriev/go-restaurant-directory/internal/server"
	"github.com/MKhiriev/go-restaurant-directory/internal/service"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/internal/workers"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Banner() {
		fmt.Println(line)
	}

	log := logger.NewLogger("restaurant-directory-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	presigner, err := objectstore.NewS3Presigner(ctx, cfg.Storage.Objects, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object storage presigner")
	}

	services, err := service.NewServices(storages, presigner, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	m := metrics.New()

	handlers, err := handler.NewHandlers(services, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	sweeper := workers.NewRevocationSweeper(storages.RevokedTokenRepository, cfg.Workers, m, log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(sweeper), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
