// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultKey is the fixed key the local vault record is stored under.
const VaultKey = "passwords"

// localVaultStore serialises the record list as one JSON array under
// [VaultKey].
type localVaultStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

func NewLocalVaultStore(kv KeyValueStore, logger *logger.Logger) LocalVaultStore {
	return &localVaultStore{kv: kv, logger: logger}
}

// Load returns the stored records. Absent and undecodable values both give
// an empty list; only a failing KeyValueStore is reported as an error.
func (s *localVaultStore) Load(ctx context.Context) ([]models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	raw, err := s.kv.Get(ctx, VaultKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.EncryptedRecord{}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*localVaultStore.Load").Msg("error reading local vault")
		return nil, fmt.Errorf("error reading local vault: %w", err)
	}

	var records []models.EncryptedRecord
	if err = json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warn().Err(err).Str("func", "*localVaultStore.Load").Msg("local vault is corrupt, loading empty list")
		return []models.EncryptedRecord{}, nil
	}
	if records == nil {
		records = []models.EncryptedRecord{}
	}

	return records, nil
}

// Save replaces the stored value with the JSON encoding of records.
func (s *localVaultStore) Save(ctx context.Context, records []models.EncryptedRecord) error {
	if records == nil {
		records = []models.EncryptedRecord{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding local vault: %w", err)
	}

	if err = s.kv.Set(ctx, VaultKey, string(payload)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localVaultStore.Save").Int("records", len(records)).Msg("error writing local vault")
		return fmt.Errorf("error writing local vault: %w", err)
	}

	return nil
}
