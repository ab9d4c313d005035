package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository keeps one vault document per account on the server.
type DocumentRepository interface {
	// GetDocument returns the account's document or ErrDocumentNotFound.
	GetDocument(ctx context.Context, accountID string) (models.VaultDocument, error)
	// SaveDocument replaces the account's document with records.
	SaveDocument(ctx context.Context, accountID string, records []models.EncryptedRecord) error
}

// ErrorClassificator decides whether a failed database call is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
