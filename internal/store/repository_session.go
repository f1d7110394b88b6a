package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
// Timestamps are stored as Unix milliseconds so that the same schema works
// on PostgreSQL and SQLite.
type sessionRepository struct {
	db      *DB
	queries queryBuilder
	logger  *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) (SessionRepository, error) {
	logger.Debug().Msg("creating session repository")

	queries, err := newQueryBuilder(db.dialect)
	if err != nil {
		return nil, err
	}

	return &sessionRepository{
		db:      db,
		queries: queries,
		logger:  logger,
	}, nil
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insertSession(session.SessionID, session.CreatedAt.UnixMilli(), session.LastActiveAt.UnixMilli())
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Str("session_id", session.SessionID).Msg("failed to insert session")
		if isUniqueViolation(err) {
			return ErrSessionAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectSession(sessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("failed to build query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		id           string
		createdAt    int64
		lastActiveAt int64
	)
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&id, &createdAt, &lastActiveAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Str("session_id", sessionID).Msg("failed to select session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.Session{
		SessionID:    id,
		CreatedAt:    time.UnixMilli(createdAt),
		LastActiveAt: time.UnixMilli(lastActiveAt),
	}, nil
}

func (r *sessionRepository) TouchSession(ctx context.Context, sessionID string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.touchSession(sessionID, at.UnixMilli())
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.TouchSession").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.TouchSession").Str("session_id", sessionID).Msg("failed to touch session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteSession removes the messages explicitly instead of relying on the
// cascade, which SQLite only honours with foreign keys enabled.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	messagesQuery, messagesArgs, err := r.queries.deleteSessionMessages(sessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	sessionQuery, sessionArgs, err := r.queries.deleteSession(sessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			if _, execErr := tx.ExecContext(ctx, messagesQuery, messagesArgs...); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}

			res, execErr := tx.ExecContext(ctx, sessionQuery, sessionArgs...)
			if execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}

			affected, execErr := res.RowsAffected()
			if execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			if affected == 0 {
				return ErrSessionNotFound
			}
			return nil
		})
	})
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Str("session_id", sessionID).Msg("failed to delete session")
	}

	return err
}

func (r *sessionRepository) DeleteIdleSessions(ctx context.Context, idleSince time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	messagesQuery, messagesArgs, err := r.queries.deleteIdleSessionMessages(idleSince.UnixMilli())
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteIdleSessions").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	sessionsQuery, sessionsArgs, err := r.queries.deleteIdleSessions(idleSince.UnixMilli())
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteIdleSessions").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			if _, execErr := tx.ExecContext(ctx, messagesQuery, messagesArgs...); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}

			res, execErr := tx.ExecContext(ctx, sessionsQuery, sessionsArgs...)
			if execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}

			deleted, execErr = res.RowsAffected()
			if execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteIdleSessions").Msg("failed to delete idle sessions")
		return 0, err
	}

	return deleted, nil
}
