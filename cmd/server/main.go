// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/MKhiriev/go-doc-intake/internal/adapter"
	"github.com/MKhiriev/go-doc-intake/internal/config"
	handler "github.com/MKhiriev/go-doc-intake/internal/handler/http"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/server"
	"github.com/MKhiriev/go-doc-intake/internal/service"
	"github.com/MKhiriev/go-doc-intake/internal/store"
	"github.com/MKhiriev/go-doc-intake/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("doc-intake-server")

	if _, err := maxprocs.Set(maxprocs.Logger(log.Printf)); err != nil {
		log.Warn().Err(err).Msg("error setting GOMAXPROCS")
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if buildInfo.HasVersion() && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("bucket", cfg.Storage.Bucket).
		Str("endpoint", cfg.Storage.EndpointURL()).
		Bool("delivery", cfg.Messenger.Enabled()).
		Msg("received configs")

	storages := store.NewStorages(cfg.Storage, log)
	messenger := adapter.NewMessenger(cfg.Messenger, log)

	services, err := service.NewServices(storages, messenger, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	h := handler.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
