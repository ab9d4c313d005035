package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ClientStorages groups the client-side stores.
type ClientStorages struct {
	// KeyValue is the device-scoped store chosen by the local driver.
	KeyValue KeyValueStore

	// Vault is the manual-login vault record on top of KeyValue.
	Vault LocalVaultStore
}

// NewClientStorages initialises the client storage layer:
//   - "sqlite" opens the database at cfg.Path and runs pending migrations;
//   - "file" keeps a JSON file at cfg.Path;
//   - "memory" keeps nothing across runs.
func NewClientStorages(ctx context.Context, cfg config.Local, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("driver", cfg.Driver).Msg("creating client storages...")

	var kv KeyValueStore
	switch cfg.Driver {
	case config.LocalDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = NewSQLiteKeyValue(db, logger)

	case config.LocalDriverFile:
		fileKV, err := NewFileKeyValue(cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		kv = fileKV

	case config.LocalDriverMemory:
		kv = NewMemoryKeyValue()

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocalDriver, cfg.Driver)
	}

	return &ClientStorages{
		KeyValue: kv,
		Vault:    NewLocalVaultStore(kv, logger),
	}, nil
}

// Close releases the underlying key-value store.
func (s *ClientStorages) Close() error {
	return s.KeyValue.Close()
}
