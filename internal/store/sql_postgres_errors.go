package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// retryablePostgresCodes are the failures a chat turn can outlive: the
// connection dropping, the server restarting or running out of slots, and
// concurrent writers to the same session colliding.
var retryablePostgresCodes = map[string]struct{}{
	pgerrcode.ConnectionException:                     {},
	pgerrcode.ConnectionDoesNotExist:                  {},
	pgerrcode.ConnectionFailure:                       {},
	pgerrcode.SQLClientUnableToEstablishSQLConnection: {},
	pgerrcode.TransactionResolutionUnknown:            {},
	pgerrcode.TransactionRollback:                     {},
	pgerrcode.SerializationFailure:                    {},
	pgerrcode.DeadlockDetected:                        {},
	pgerrcode.TooManyConnections:                      {},
	pgerrcode.AdminShutdown:                           {},
	pgerrcode.CrashShutdown:                           {},
	pgerrcode.CannotConnectNow:                        {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx
// driver. Constraint violations are never retried: a duplicate session id or
// a message for a deleted session will fail the same way again.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresCode(err)
	if code == "" {
		return NonRetryable
	}

	if _, ok := retryablePostgresCodes[code]; ok {
		return Retryable
	}
	return NonRetryable
}

// postgresCode returns the SQLSTATE of a pgx error, or "" for anything else.
func postgresCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
