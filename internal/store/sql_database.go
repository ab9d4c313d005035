package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// DB wraps a database handle together with the dialect specific helpers
// repositories need.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(db.DB)
}

// noRetry is the classifier used for dialects without retryable error codes.
type noRetry struct{}

func (noRetry) Classify(error) ErrorClassification { return NonRetryable }
