package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/models"
)

// messageRepository is the SQL implementation of [MessageRepository].
// Sources are kept as a JSON array in a text column.
type messageRepository struct {
	db      *DB
	queries queryBuilder
	logger  *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) (MessageRepository, error) {
	logger.Debug().Msg("creating message repository")

	queries, err := newQueryBuilder(db.dialect)
	if err != nil {
		return nil, err
	}

	return &messageRepository{
		db:      db,
		queries: queries,
		logger:  logger,
	}, nil
}

// SaveMessage assigns the next sequence number of the session and inserts
// the message in the same transaction.
func (r *messageRepository) SaveMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	sources, err := encodeSources(message.Sources)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.SaveMessage").Msg("failed to encode sources")
		return models.Message{}, err
	}

	seqQuery, seqArgs, err := r.queries.nextMessageSeq(message.SessionID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.SaveMessage").Msg("failed to build query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.inTx(ctx, func(tx *sql.Tx) error {
			if scanErr := tx.QueryRowContext(ctx, seqQuery, seqArgs...).Scan(&seq); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}

			insertQuery, insertArgs, buildErr := r.queries.insertMessage(message.SessionID, seq, string(message.Role), message.Content, sources, message.Timestamp)
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}

			if _, execErr := tx.ExecContext(ctx, insertQuery, insertArgs...); execErr != nil {
				if isForeignKeyViolation(execErr) {
					return ErrSessionNotFound
				}
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.SaveMessage").
			Str("session_id", message.SessionID).
			Msg("failed to save message")
		return models.Message{}, err
	}

	message.Seq = seq
	return message, nil
}

func (r *messageRepository) ListMessages(ctx context.Context, sessionID string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.listMessages(sessionID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var messages []models.Message
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var queryErr error
		messages, queryErr = r.queryMessages(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.ListMessages").
			Str("session_id", sessionID).
			Msg("failed to list messages")
		return nil, err
	}

	return messages, nil
}

func (r *messageRepository) queryMessages(ctx context.Context, query string, args []any) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 16)
	for rows.Next() {
		var (
			msg     models.Message
			role    string
			sources string
		)
		if err = rows.Scan(&msg.SessionID, &msg.Seq, &role, &msg.Content, &sources, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		msg.Role = models.Role(role)
		if msg.Sources, err = decodeSources(sources); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func encodeSources(sources []models.Source) (string, error) {
	if len(sources) == 0 {
		return "[]", nil
	}

	data, err := json.Marshal(sources)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingSources, err)
	}
	return string(data), nil
}

func decodeSources(raw string) ([]models.Source, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}

	var sources []models.Source
	if err := json.Unmarshal([]byte(raw), &sources); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingSources, err)
	}
	return sources, nil
}
