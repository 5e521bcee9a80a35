// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/crypto-admin-api/internal/adapter"
	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/handler"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/server"
	"github.com/MKhiriev/crypto-admin-api/internal/service"
	"github.com/MKhiriev/crypto-admin-api/internal/store"
	"github.com/MKhiriev/crypto-admin-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx := context.Background()

	cfg, err := config.GetStructuredConfig(ctx)
	if err != nil {
		logger.NewLogger("crypto-admin-api").Fatal().Err(err).Msg("error getting configs")
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		logger.NewLogger("crypto-admin-api").Fatal().Err(err).Msg("error creating logger")
	}

	if cfg.App.Version == config.DefaultAppVersion && buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Str("identity_provider", cfg.App.IdentityProvider).
		Str("email_provider", cfg.Email.Provider).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	if cfg.Storage.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Msg("migrations applied")
	}

	storages := store.NewStorages(db, log)

	adapters, err := adapter.NewAdapters(ctx, cfg, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	services, err := service.NewServices(storages, adapters, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

// newLogger applies the configured level and, when a log file is set, adds a
// rotating file output next to stdout.
func newLogger(cfg config.Log) (*logger.Logger, error) {
	if err := logger.SetLevel(cfg.Level); err != nil {
		return nil, err
	}

	if cfg.File == "" {
		return logger.NewLogger("crypto-admin-api"), nil
	}

	file, err := logger.RotatingFile(cfg.File)
	if err != nil {
		return nil, err
	}
	return logger.NewLogger("crypto-admin-api", file), nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
