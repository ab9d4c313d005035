// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the vault's symmetric primitives: the field Cipher and
// the KeyMaterial it is keyed with.
//
// Both are fail-soft by contract. Encrypt always produces cipher text for a
// live key, and Decrypt never returns an error: malformed input, a destroyed
// key or a key that does not match the one used for encryption all yield an
// empty string.
package crypto

// Cipher encrypts and decrypts single text fields.
type Cipher interface {
	// Encrypt returns base64 cipher text for plaintext under key. Two calls
	// with the same inputs return different cipher text.
	Encrypt(plaintext string, key *KeyMaterial) string

	// Decrypt returns the plaintext for cipherText under key, or "" when
	// cipherText is malformed or was produced with a different key.
	Decrypt(cipherText string, key *KeyMaterial) string
}

// KeyDeriver turns an account identifier into session key material.
// Derivation is deterministic: the same identifier always yields the same key.
type KeyDeriver interface {
	Derive(identifier string) *KeyMaterial
}
