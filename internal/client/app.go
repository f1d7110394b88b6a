package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/service"
)

const defaultCloseTimeout = 5 * time.Second

var (
	errNilServices = errors.New("client services are nil")
	errNilUI       = errors.New("ui is nil")
)

type App struct {
	chat   service.ClientChatService
	ui     UI
	logger *logger.Logger

	closeTimeout time.Duration
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.ChatService == nil {
		return nil, errNilServices
	}
	if ui == nil {
		return nil, errNilUI
	}

	return &App{
		chat:         services.ChatService,
		ui:           ui,
		logger:       logger,
		closeTimeout: defaultCloseTimeout,
	}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	// a failed first session is shown by the UI; the user can retry with a reset
	if err := a.chat.Initialize(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.run").Msg("initial session request failed")
	}
	defer a.shutdown()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui run: %w", err)
	}

	a.logger.Info().Str("func", "*App.run").Msg("client stopped")
	return nil
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.closeTimeout)
	defer cancel()

	a.chat.Close(ctx)
}
