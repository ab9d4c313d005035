package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	documentsTable      = "vault_documents"
	documentsAccountCol = "account_id"
	documentsRecordsCol = "records"
	documentsUpdatedCol = "updated_at"
)

var defaultRetryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// postgresDocumentRepository is the PostgreSQL-backed [DocumentRepository].
// The whole record list of an account lives in one JSONB column and is
// replaced with a single upsert.
type postgresDocumentRepository struct {
	db          *DB
	logger      *logger.Logger
	retryDelays []time.Duration
}

// NewDocumentRepository constructs a [DocumentRepository] on top of a
// migrated postgres DB.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating vault document repository")
	return &postgresDocumentRepository{
		db:          db,
		logger:      logger,
		retryDelays: defaultRetryDelays,
	}
}

// GetDocument loads the account's document.
//
// Error handling:
//   - no row → [ErrDocumentNotFound].
//   - records column not decodable → [ErrCorruptDocument].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *postgresDocumentRepository) GetDocument(ctx context.Context, accountID string) (models.VaultDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(documentsRecordsCol, documentsUpdatedCol).
		From(documentsTable).
		Where(sq.Eq{documentsAccountCol: accountID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postgresDocumentRepository.GetDocument").Msg("error building query")
		return models.VaultDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		raw       []byte
		updatedAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultDocument{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postgresDocumentRepository.GetDocument").Str("pg_code", postgresError(err)).Msg("error reading document")
		return models.VaultDocument{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	records := []models.EncryptedRecord{}
	if err = json.Unmarshal(raw, &records); err != nil {
		log.Err(err).Str("func", "*postgresDocumentRepository.GetDocument").Msg("error decoding document")
		return models.VaultDocument{}, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}
	if records == nil {
		records = []models.EncryptedRecord{}
	}

	return models.VaultDocument{Passwords: records, UpdatedAt: &updatedAt}, nil
}

// SaveDocument upserts the account's document. Transient postgres failures
// (connection loss, serialization failure, deadlock) are retried with the
// repository's back-off delays.
func (r *postgresDocumentRepository) SaveDocument(ctx context.Context, accountID string, records []models.EncryptedRecord) error {
	log := logger.FromContext(ctx)

	if records == nil {
		records = []models.EncryptedRecord{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}

	query, args, err := sq.Insert(documentsTable).
		Columns(documentsAccountCol, documentsRecordsCol, documentsUpdatedCol).
		Values(accountID, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT (account_id) DO UPDATE SET records = EXCLUDED.records, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postgresDocumentRepository.SaveDocument").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*postgresDocumentRepository.SaveDocument").Str("pg_code", postgresError(err)).Msg("error saving document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil || affected == 0 {
		log.Error().Str("func", "*postgresDocumentRepository.SaveDocument").Int64("affected", affected).Msg("document was not saved")
		return ErrDocumentNotSaved
	}

	return nil
}

// withRetry runs op and repeats it after each delay while the failure is
// classified as retryable.
func (r *postgresDocumentRepository) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range r.retryDelays {
		if err == nil || r.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		r.logger.Warn().Err(err).Dur("delay", delay).Msg("retrying database operation")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}

		err = op()
	}
	return err
}
