package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-news-chat/internal/config"
	"github.com/MKhiriev/go-news-chat/internal/handler"
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/server"
	"github.com/MKhiriev/go-news-chat/internal/service"
	"github.com/MKhiriev/go-news-chat/internal/store"
	"github.com/MKhiriev/go-news-chat/internal/workers"
	"github.com/MKhiriev/go-news-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("news-chat-server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(services, cfg.Workers, log)
	jobs.Run()
	defer jobs.Stop()

	srv.RunServer()
}
