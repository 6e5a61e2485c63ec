package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/migrations"
)

// DB wraps the item database connection pool with the error classifier used
// when logging failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Ping implements [Pinger].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// retryable reports whether err is a transient database failure.
func (db *DB) retryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}
