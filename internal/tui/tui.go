package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/internal/service"
	"github.com/MKhiriev/go-news-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the chat client. It renders the
// controller's transcript and forwards user commands to it.
type TUI struct {
	chat      service.ClientChatService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		chat:      services.ChatService,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newChatModel(ctx, t.chat, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run chat ui: %w", err)
	}

	if _, ok := finalModel.(chatModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
