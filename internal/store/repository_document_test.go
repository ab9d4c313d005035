package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentRepo(t *testing.T) (*postgresDocumentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	repo := &postgresDocumentRepository{
		db:          &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger:      l,
		retryDelays: []time.Duration{0, 0},
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestGetDocument_Found(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("SELECT records, updated_at FROM vault_documents WHERE account_id = \\$1").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows([]string{"records", "updated_at"}).
			AddRow([]byte(`[{"site":"s","username":"u","password":"p"}]`), updated))

	doc, err := repo.GetDocument(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, []models.EncryptedRecord{{Site: "s", Username: "u", Password: "p"}}, doc.Passwords)
	require.NotNil(t, doc.UpdatedAt)
	assert.True(t, updated.Equal(*doc.UpdatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDocument_NotFound(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT records, updated_at FROM vault_documents").
		WithArgs("uid-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDocument(context.Background(), "uid-1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestGetDocument_Corrupt(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT records, updated_at FROM vault_documents").
		WillReturnRows(sqlmock.NewRows([]string{"records", "updated_at"}).AddRow([]byte(`"nope"`), time.Now()))

	_, err := repo.GetDocument(context.Background(), "uid-1")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestGetDocument_DBError(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT records, updated_at FROM vault_documents").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.GetDocument(context.Background(), "uid-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSaveDocument_Upserts(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_documents \\(account_id,records,updated_at\\) VALUES \\(\\$1,\\$2,\\$3\\) ON CONFLICT \\(account_id\\) DO UPDATE").
		WithArgs("uid-1", `[{"site":"s","username":"u","password":"p"}]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveDocument(context.Background(), "uid-1", []models.EncryptedRecord{{Site: "s", Username: "u", Password: "p"}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDocument_NilRecordsStoresEmptyArray(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_documents").
		WithArgs("uid-1", "[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveDocument(context.Background(), "uid-1", nil))
}

func TestSaveDocument_RetriesTransientErrors(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_documents").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO vault_documents").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec("INSERT INTO vault_documents").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveDocument(context.Background(), "uid-1", []models.EncryptedRecord{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDocument_GivesUpAfterRetries(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO vault_documents").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	err := repo.SaveDocument(context.Background(), "uid-1", []models.EncryptedRecord{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDocument_DoesNotRetryPermanentErrors(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_documents").WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := repo.SaveDocument(context.Background(), "uid-1", []models.EncryptedRecord{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveDocument_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_documents").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveDocument(context.Background(), "uid-1", []models.EncryptedRecord{})
	assert.ErrorIs(t, err, ErrDocumentNotSaved)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	repo, _, db := newTestDocumentRepo(t)
	defer db.Close()
	repo.retryDelays = []time.Duration{time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := repo.withRetry(ctx, func() error {
		calls++
		return pgError(pgerrcode.SerializationFailure)
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
