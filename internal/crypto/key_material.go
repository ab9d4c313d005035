// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/argon2"
)

const (
	keyLen = 32 // AES-256

	redacted = "[REDACTED]"
)

// derivationSalt domain-separates vault keys from any other use of the same
// identifier. It is fixed so that a username reproduces its key on every
// device.
var derivationSalt = []byte("go-pass-vault/key-material/v1")

// KeyMaterial is the session's symmetric key. It is a capability: whoever holds
// a live KeyMaterial can read the vault. Destroy zeroes the key; a destroyed
// KeyMaterial encrypts to "" and decrypts everything to "".
//
// KeyMaterial never prints its contents. fmt verbs, JSON and zerolog all see
// "[REDACTED]".
type KeyMaterial struct {
	mu  sync.RWMutex
	key []byte
}

// newKeyMaterial takes ownership of key.
func newKeyMaterial(key []byte) *KeyMaterial {
	return &KeyMaterial{key: key}
}

func (k *KeyMaterial) bytes() []byte {
	if k == nil {
		return nil
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.key
}

// Alive reports whether the key has not been destroyed.
func (k *KeyMaterial) Alive() bool {
	return len(k.bytes()) == keyLen
}

// Destroy overwrites the key bytes and drops them. Safe to call more than once
// and on a nil receiver.
func (k *KeyMaterial) Destroy() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	for i := range k.key {
		k.key[i] = 0
	}
	k.key = nil
}

// String implements [fmt.Stringer].
func (k *KeyMaterial) String() string { return redacted }

// GoString implements [fmt.GoStringer].
func (k *KeyMaterial) GoString() string { return redacted }

// MarshalText implements [encoding.TextMarshaler].
func (k *KeyMaterial) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (k *KeyMaterial) MarshalZerologObject(e *zerolog.Event) {
	e.Str("key", redacted)
}

// Argon2Params tunes [NewArgon2Deriver].
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2Params follow the OWASP argon2id baseline.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

type argon2Deriver struct {
	params Argon2Params
}

// NewArgon2Deriver returns a [KeyDeriver] running argon2id over the identifier
// with a fixed salt. Zero fields in params fall back to
// [DefaultArgon2Params].
func NewArgon2Deriver(params Argon2Params) KeyDeriver {
	if params.Time == 0 {
		params.Time = DefaultArgon2Params.Time
	}
	if params.Memory == 0 {
		params.Memory = DefaultArgon2Params.Memory
	}
	if params.Threads == 0 {
		params.Threads = DefaultArgon2Params.Threads
	}

	return &argon2Deriver{params: params}
}

// Derive implements [KeyDeriver].
func (d *argon2Deriver) Derive(identifier string) *KeyMaterial {
	key := argon2.IDKey(
		[]byte(identifier),
		derivationSalt,
		d.params.Time,
		d.params.Memory,
		d.params.Threads,
		keyLen,
	)
	return newKeyMaterial(key)
}
