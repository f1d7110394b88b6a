// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-news-chat/internal/logger"
	"github.com/MKhiriev/go-news-chat/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"
)

// Dialect names the SQL backend. The values double as goose dialect names.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// Backend returns the human readable backend name of the dialect.
func (d Dialect) Backend() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	case DialectSQLite:
		return "sqlite"
	}
	return string(d)
}

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 100 * time.Millisecond
)

// ErrorClassification tells withRetry whether a failed statement is worth
// another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	maxRetries uint64
	retryDelay time.Duration
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// withRetry runs op and repeats it with exponential backoff while the
// classificator reports the error as [Retryable].
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	maxRetries := db.maxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	delay := db.retryDelay
	if delay == 0 {
		delay = defaultRetryDelay
	}

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(delay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}

// inTx runs fn inside a transaction that is committed when fn succeeds and
// rolled back otherwise.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// isUniqueViolation reports a duplicate session id on either backend.
func isUniqueViolation(err error) bool {
	return postgresCode(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err)
}

// isForeignKeyViolation reports a message written for a session that no
// longer exists.
func isForeignKeyViolation(err error) bool {
	return postgresCode(err) == pgerrcode.ForeignKeyViolation || isSQLiteForeignKeyViolation(err)
}
