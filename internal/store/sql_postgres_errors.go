package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may succeed on a
// second attempt.
type ErrorClassification int

const (
	// NonRetryable is returned for unknown errors and for anything that
	// depends on the request itself.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// conflicts, deadlocks and servers that are still starting.
	Retryable
)

// retryablePgCodes are the SQLSTATE codes a vault document upsert is retried
// on. A document write is a single idempotent statement, so replaying it
// after any of these is safe.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:                           {},
	pgerrcode.ConnectionDoesNotExist:                        {},
	pgerrcode.ConnectionFailure:                             {},
	pgerrcode.SQLClientUnableToEstablishSQLConnection:       {},
	pgerrcode.TransactionRollback:                           {},
	pgerrcode.SerializationFailure:                          {},
	pgerrcode.DeadlockDetected:                              {},
	pgerrcode.LockNotAvailable:                              {},
	pgerrcode.CannotConnectNow:                              {},
	pgerrcode.AdminShutdown:                                 {},
	pgerrcode.CrashShutdown:                                 {},
	pgerrcode.TooManyConnections:                            {},
	pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection: {},
}

// PostgresErrorClassifier implements [ErrorClassificator] over pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not carry a
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError looks the SQLSTATE code of pgErr up in the retryable set.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
