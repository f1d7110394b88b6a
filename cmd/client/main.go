package main

import (
	"fmt"

	"github.com/MKhiriev/go-news-chat/internal/adapter"
	"github.com/MKhiriev/go-news-chat/internal/client"
	"github.com/MKhiriev/go-news-chat/internal/config"
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/service"
	"github.com/MKhiriev/go-news-chat/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("news-chat-client").Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := logger.NewClientLogger("news-chat-client", cfg.App.LogFile)
	defer closeLog()

	assistantAdapter, err := adapter.NewHTTPAssistantAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create assistant adapter")
	}

	services := service.NewClientServices(assistantAdapter, log)
	ui := tui.New(services, buildInfo, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
