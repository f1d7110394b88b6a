package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionsTable = "sessions"
	messagesTable = "messages"
)

var (
	sessionColumns = []string{"session_id", "created_at", "last_active_at"}
	messageColumns = []string{"session_id", "seq", "role", "content", "sources", "sent_at"}
)

// queryBuilder renders statements with the placeholder format of a dialect.
type queryBuilder struct {
	sq.StatementBuilderType
}

func newQueryBuilder(dialect Dialect) (queryBuilder, error) {
	switch dialect {
	case DialectPostgres:
		return queryBuilder{sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}, nil
	case DialectSQLite:
		return queryBuilder{sq.StatementBuilder.PlaceholderFormat(sq.Question)}, nil
	default:
		return queryBuilder{}, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}

func (b queryBuilder) insertSession(sessionID string, createdAt, lastActiveAt int64) (string, []any, error) {
	return b.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(sessionID, createdAt, lastActiveAt).
		ToSql()
}

func (b queryBuilder) selectSession(sessionID string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func (b queryBuilder) touchSession(sessionID string, at int64) (string, []any, error) {
	return b.Update(sessionsTable).
		Set("last_active_at", at).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func (b queryBuilder) deleteSession(sessionID string) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func (b queryBuilder) deleteSessionMessages(sessionID string) (string, []any, error) {
	return b.Delete(messagesTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func (b queryBuilder) deleteIdleSessionMessages(idleSince int64) (string, []any, error) {
	idle := sq.Select("session_id").
		From(sessionsTable).
		Where(sq.Lt{"last_active_at": idleSince})

	return b.Delete(messagesTable).
		Where(sq.Expr("session_id IN (?)", idle)).
		ToSql()
}

func (b queryBuilder) deleteIdleSessions(idleSince int64) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.Lt{"last_active_at": idleSince}).
		ToSql()
}

func (b queryBuilder) nextMessageSeq(sessionID string) (string, []any, error) {
	return b.Select("COALESCE(MAX(seq), 0) + 1").
		From(messagesTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func (b queryBuilder) insertMessage(sessionID string, seq int64, role, content, sources string, sentAt int64) (string, []any, error) {
	return b.Insert(messagesTable).
		Columns(messageColumns...).
		Values(sessionID, seq, role, content, sources, sentAt).
		ToSql()
}

func (b queryBuilder) listMessages(sessionID string) (string, []any, error) {
	return b.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("seq ASC").
		ToSql()
}
