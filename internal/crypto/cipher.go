// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
)

// aesCipher implements [Cipher] with AES-256-GCM. Output layout is
// base64(nonce ‖ ciphertext ‖ tag).
type aesCipher struct{}

// NewCipher returns the AES-GCM field cipher.
func NewCipher() Cipher {
	return &aesCipher{}
}

// Encrypt implements [Cipher]. It returns "" only when key is nil or destroyed,
// which callers never hand to it inside a live session.
func (c *aesCipher) Encrypt(plaintext string, key *KeyMaterial) string {
	gcm, ok := newGCM(key)
	if !ok {
		return ""
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return ""
	}

	blob := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob)
}

// Decrypt implements [Cipher].
func (c *aesCipher) Decrypt(cipherText string, key *KeyMaterial) string {
	gcm, ok := newGCM(key)
	if !ok {
		return ""
	}

	blob, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil {
		return ""
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return ""
	}

	nonce, ct := blob[:nonceSize], blob[nonceSize:]
	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return ""
	}

	return string(pt)
}

func newGCM(key *KeyMaterial) (cipher.AEAD, bool) {
	raw := key.bytes()
	if len(raw) != keyLen {
		return nil, false
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, false
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, false
	}

	return gcm, true
}
