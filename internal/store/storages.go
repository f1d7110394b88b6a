package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-news-chat/internal/config"
	"github.com/MKhiriev/go-news-chat/internal/logger"
)

// Storages aggregates the repositories used by the server services.
type Storages struct {
	SessionRepository SessionRepository
	MessageRepository MessageRepository

	backend string
	db      *DB
}

const backendMemory = "memory"

// NewStorages selects the backend from the configured DSN: empty keeps
// everything in memory, a postgres URL connects through pgx and any other
// value is opened as a SQLite database. SQL backends are migrated before
// use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" {
		log.Info().Str("func", "NewStorages").Msg("using in-memory session storage")
		memory := NewMemoryStorage()
		return &Storages{
			SessionRepository: memory,
			MessageRepository: memory,
			backend:           backendMemory,
		}, nil
	}

	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newSQLStorages(db, log)
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	sessions, err := NewSessionRepository(db, log)
	if err != nil {
		return nil, err
	}
	messages, err := NewMessageRepository(db, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		SessionRepository: sessions,
		MessageRepository: messages,
		backend:           db.dialect.Backend(),
		db:                db,
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Backend names the storage in use: memory, postgres or sqlite.
func (s *Storages) Backend() string {
	return s.backend
}

// Ping checks the database connection. The in-memory backend always
// answers.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
