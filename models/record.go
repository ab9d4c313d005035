// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedRecord is the at-rest form of a [VaultEntry]. Every field holds
// cipher text; the login method is not stored.
type EncryptedRecord struct {
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// VaultDocument is the remote representation of an account's vault: the full
// list of encrypted records, replaced as a whole on every save.
type VaultDocument struct {
	Passwords []EncryptedRecord `json:"passwords"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

// SaveDocumentRequest is the body of a remote save. Hash is a hex HMAC-SHA256
// over the JSON encoding of Passwords and Length is len(Passwords); both are
// checked by the server before the document is replaced.
type SaveDocumentRequest struct {
	Passwords []EncryptedRecord `json:"passwords"`
	Length    int               `json:"length"`
	Hash      string            `json:"hash"`
}
