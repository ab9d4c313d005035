package service

import (
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastArgon2 = crypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1}

func testKey(identifier string) *crypto.KeyMaterial {
	return crypto.NewArgon2Deriver(fastArgon2).Derive(identifier)
}

func TestEntryCodec_RoundTrip(t *testing.T) {
	codec := NewEntryCodec(crypto.NewCipher())
	key := testKey("alice")

	entry := models.VaultEntry{Site: "example.com", Username: "alice", Password: "p1", LoginMethod: models.LoginMethodManual}
	record := codec.ToRecord(entry, key)

	assert.NotEqual(t, entry.Site, record.Site)
	assert.NotEqual(t, entry.Username, record.Username)
	assert.NotEqual(t, entry.Password, record.Password)

	assert.Equal(t, entry, codec.FromRecord(record, key, models.LoginMethodManual))
}

func TestEntryCodec_FromRecordAttachesMethod(t *testing.T) {
	codec := NewEntryCodec(crypto.NewCipher())
	key := testKey("uid-1")

	record := codec.ToRecord(models.VaultEntry{Site: "s", Username: "u", LoginMethod: models.LoginMethodManual}, key)
	got := codec.FromRecord(record, key, models.LoginMethodGoogle)

	assert.Equal(t, models.LoginMethodGoogle, got.LoginMethod)
}

func TestEntryCodec_WrongKeyBlanksEveryField(t *testing.T) {
	codec := NewEntryCodec(crypto.NewCipher())

	record := codec.ToRecord(models.VaultEntry{Site: "example.com", Username: "alice", Password: "p1"}, testKey("alice"))
	got := codec.FromRecord(record, testKey("bob"), models.LoginMethodManual)

	assert.Equal(t, models.VaultEntry{LoginMethod: models.LoginMethodManual}, got)
}

func TestEntryCodec_FieldsFailIndependently(t *testing.T) {
	codec := NewEntryCodec(crypto.NewCipher())
	key := testKey("alice")

	record := codec.ToRecord(models.VaultEntry{Site: "example.com", Username: "alice", Password: "p1"}, key)
	record.Username = "not base64 !!"

	got := codec.FromRecord(record, key, models.LoginMethodManual)
	assert.Equal(t, "example.com", got.Site)
	assert.Empty(t, got.Username)
	assert.Equal(t, "p1", got.Password)
}

func TestEntryCodec_EncodeDecodeKeepOrder(t *testing.T) {
	codec := NewEntryCodec(crypto.NewCipher())
	key := testKey("alice")

	entries := []models.VaultEntry{
		{Site: "a", Username: "1", Password: "x", LoginMethod: models.LoginMethodManual},
		{Site: "b", Username: "2", Password: "y", LoginMethod: models.LoginMethodManual},
		{Site: "c", Username: "3", Password: "z", LoginMethod: models.LoginMethodManual},
	}

	records := codec.Encode(entries, key)
	require.Len(t, records, 3)
	assert.Equal(t, entries, codec.Decode(records, key, models.LoginMethodManual))
}

func TestEntryCodec_EmptyLists(t *testing.T) {
	codec := NewEntryCodec(crypto.NewCipher())
	key := testKey("alice")

	records := codec.Encode(nil, key)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	entries := codec.Decode(nil, key, models.LoginMethodManual)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
