package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

type ClientServices struct {
	Session  VaultSession
	Selector BackendSelector
	Codec    EntryCodec
}

// NewClientServices wires a vault session over the device store and the
// remote vault service. serverAdapter and identity may be nil, which leaves
// google login unavailable.
func NewClientServices(
	localStore store.LocalVaultStore,
	serverAdapter adapter.ServerAdapter,
	identity IdentityProvider,
	cfg config.ClientWorkers,
	onSync workers.SyncListener,
	logger *logger.Logger,
) *ClientServices {
	var local Backend
	if localStore != nil {
		local = NewLocalBackend(localStore)
	}

	selector := NewBackendSelector(local, serverAdapter)
	codec := NewEntryCodec(crypto.NewCipher())

	opts := SessionOptions{
		Persister: workers.PersisterOptions{
			SaveTimeout: cfg.PersistTimeout,
		},
		OnSync: onSync,
	}

	return &ClientServices{
		Session:  NewVaultSession(selector, identity, codec, crypto.NewArgon2Deriver(crypto.Argon2Params{}), opts, logger),
		Selector: selector,
		Codec:    codec,
	}
}
