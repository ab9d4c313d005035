package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is device-scoped string storage.
type KeyValueStore interface {
	// Get returns the value stored under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value atomically.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// LocalVaultStore persists the manual-login vault as a single record on the
// device.
type LocalVaultStore interface {
	// Load returns the stored records. A missing or unreadable record yields
	// an empty list.
	Load(ctx context.Context) ([]models.EncryptedRecord, error)
	// Save overwrites the stored record with records.
	Save(ctx context.Context, records []models.EncryptedRecord) error
}
