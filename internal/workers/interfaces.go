// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the vault client.
//
// Workers are started with Run and own their goroutines; callers stop them
// through the worker-specific shutdown method.
package workers

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker and returns immediately; the work happens on
// goroutines owned by the worker.
type Worker interface {
	Run()
}

// Saver persists a full snapshot of encrypted records. Vault backends
// satisfy it.
type Saver interface {
	Save(ctx context.Context, records []models.EncryptedRecord) error
	Method() models.LoginMethod
}

// SyncListener receives the result of every persisted snapshot. It is called
// from the worker goroutine and must not block for long.
type SyncListener func(models.SyncEvent)
