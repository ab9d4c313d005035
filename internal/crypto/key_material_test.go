// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Deriver_Deterministic(t *testing.T) {
	d := NewArgon2Deriver(testParams)

	k1 := d.Derive("alice")
	k2 := d.Derive("alice")

	require.True(t, k1.Alive())
	assert.Len(t, k1.bytes(), keyLen)
	assert.True(t, bytes.Equal(k1.bytes(), k2.bytes()))
}

func TestArgon2Deriver_DifferentIdentifiers(t *testing.T) {
	d := NewArgon2Deriver(testParams)

	assert.False(t, bytes.Equal(d.Derive("alice").bytes(), d.Derive("bob").bytes()))
}

func TestArgon2Deriver_ZeroParamsUseDefaults(t *testing.T) {
	d := NewArgon2Deriver(Argon2Params{}).(*argon2Deriver)
	assert.Equal(t, DefaultArgon2Params, d.params)
}

func TestKeyMaterial_Destroy(t *testing.T) {
	k := NewArgon2Deriver(testParams).Derive("alice")
	raw := k.bytes()

	k.Destroy()

	assert.False(t, k.Alive())
	assert.Nil(t, k.bytes())
	assert.Equal(t, make([]byte, keyLen), raw, "key bytes must be zeroed in place")

	assert.NotPanics(t, k.Destroy)

	var nilKey *KeyMaterial
	assert.NotPanics(t, nilKey.Destroy)
	assert.False(t, nilKey.Alive())
}

func TestKeyMaterial_NeverPrinted(t *testing.T) {
	k := NewArgon2Deriver(testParams).Derive("alice")
	raw := string(k.bytes())

	assert.Equal(t, redacted, fmt.Sprintf("%v", k))
	assert.Equal(t, redacted, fmt.Sprintf("%s", k))
	assert.Equal(t, redacted, fmt.Sprintf("%#v", k))

	js, err := json.Marshal(struct {
		Key *KeyMaterial `json:"key"`
	}{Key: k})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"[REDACTED]"}`, string(js))

	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	zl.Info().Object("material", k).Msg("derived")
	assert.Contains(t, buf.String(), redacted)
	assert.NotContains(t, buf.String(), raw)
}
