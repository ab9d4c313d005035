// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the outcome of one background persist.
type SyncStatus int

const (
	// SyncSaved means the backend confirmed the snapshot.
	SyncSaved SyncStatus = iota + 1
	// SyncFailed means the backend rejected or never received the snapshot.
	// The in-memory vault is left as it was.
	SyncFailed
)

// String implements [fmt.Stringer].
func (s SyncStatus) String() string {
	switch s {
	case SyncSaved:
		return "saved"
	case SyncFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncEvent reports the result of persisting one full snapshot of the vault.
type SyncEvent struct {
	// Seq is the mutation sequence number the snapshot was taken at.
	// Events are delivered in increasing Seq order.
	Seq uint64
	// Status tells saved from failed.
	Status SyncStatus
	// Method is the login method of the backend that handled the snapshot.
	Method LoginMethod
	// Records is the number of records in the snapshot.
	Records int
	// Err is set when Status is SyncFailed.
	Err error
	// At is when the backend call returned.
	At time.Time
}

// Message returns a short human readable description of the event.
func (e SyncEvent) Message() string {
	if e.Status == SyncFailed {
		if e.Method == LoginMethodGoogle {
			return "cloud sync failed"
		}
		return "local save failed"
	}
	if e.Method == LoginMethodGoogle {
		return "synced to cloud"
	}
	return "saved locally"
}
