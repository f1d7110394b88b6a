package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/config"
	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/models"
)

// storageProbe reports which session backend is in use and whether it
// answers.
type storageProbe interface {
	Backend() string
	Ping(ctx context.Context) error
}

type statusService struct {
	version   string
	startedAt time.Time
	storage   storageProbe

	logger *logger.Logger
}

func NewStatusService(cfg config.App, storage storageProbe, logger *logger.Logger) (StatusService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &statusService{
		version:   cfg.Version,
		startedAt: time.Now(),
		storage:   storage,
		logger:    logger,
	}, nil
}

// Status pings the session storage so that a broken database is reported
// before a client tries to open a session.
func (s *statusService) Status(ctx context.Context) (models.ServerStatus, error) {
	status := models.ServerStatus{
		Version:   s.version,
		Storage:   s.storage.Backend(),
		StartedAt: s.startedAt.UnixMilli(),
	}

	if err := s.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*statusService.Status").
			Str("storage", status.Storage).
			Msg("session storage does not answer")
		return status, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return status, nil
}
