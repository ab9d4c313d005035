package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/models"
)

// remoteBackend keeps google-login vaults in the remote vault service, one
// document per account.
type remoteBackend struct {
	server    adapter.ServerAdapter
	accountID string
}

func NewRemoteBackend(server adapter.ServerAdapter, accountID string) Backend {
	return &remoteBackend{server: server, accountID: accountID}
}

// Load implements [Backend]. An account without a document has an empty
// vault.
func (b *remoteBackend) Load(ctx context.Context) ([]models.EncryptedRecord, error) {
	doc, err := b.server.GetDocument(ctx, b.accountID)
	if errors.Is(err, adapter.ErrNotFound) {
		return []models.EncryptedRecord{}, nil
	}
	if err != nil {
		return nil, mapAdapterError(err)
	}

	if doc.Passwords == nil {
		return []models.EncryptedRecord{}, nil
	}
	return doc.Passwords, nil
}

func (b *remoteBackend) Save(ctx context.Context, records []models.EncryptedRecord) error {
	return mapAdapterError(b.server.PutDocument(ctx, b.accountID, records))
}

func (b *remoteBackend) Method() models.LoginMethod {
	return models.LoginMethodGoogle
}
