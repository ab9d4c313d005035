package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// localBackend keeps manual-login vaults on the device.
type localBackend struct {
	store store.LocalVaultStore
}

func NewLocalBackend(localStore store.LocalVaultStore) Backend {
	return &localBackend{store: localStore}
}

func (b *localBackend) Load(ctx context.Context) ([]models.EncryptedRecord, error) {
	records, err := b.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	return records, nil
}

func (b *localBackend) Save(ctx context.Context, records []models.EncryptedRecord) error {
	if err := b.store.Save(ctx, records); err != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	return nil
}

func (b *localBackend) Method() models.LoginMethod {
	return models.LoginMethodManual
}
