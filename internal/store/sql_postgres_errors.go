package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may succeed when
// the client pushes or fetches again.
type ErrorClassification int

const (
	// NonRetryable covers constraint violations, bad data and everything the
	// classifier does not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable covers lost connections, serialization failures, deadlocks
	// and a server that is starting up.
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non_retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] over the SQLSTATE
// codes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [NonRetryable] for nil and for errors that did not come
// from the PostgreSQL server.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies by SQLSTATE class: 08 (connection exception)
// and 40 (transaction rollback) are retryable, as are 57P03 (cannot connect
// now) and 55P03 (lock not available, raised for the device row lock when
// lock_timeout is set on the server).
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow,
		pgErr.Code == pgerrcode.LockNotAvailable:
		return Retryable
	default:
		return NonRetryable
	}
}

// postgresError returns the SQLSTATE code of err, or "" when err did not
// come from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
