package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

type entryCodec struct {
	cipher crypto.Cipher
}

func NewEntryCodec(cipher crypto.Cipher) EntryCodec {
	return &entryCodec{cipher: cipher}
}

func (c *entryCodec) ToRecord(entry models.VaultEntry, key *crypto.KeyMaterial) models.EncryptedRecord {
	return models.EncryptedRecord{
		Site:     c.cipher.Encrypt(entry.Site, key),
		Username: c.cipher.Encrypt(entry.Username, key),
		Password: c.cipher.Encrypt(entry.Password, key),
	}
}

func (c *entryCodec) FromRecord(record models.EncryptedRecord, key *crypto.KeyMaterial, method models.LoginMethod) models.VaultEntry {
	return models.VaultEntry{
		Site:        c.cipher.Decrypt(record.Site, key),
		Username:    c.cipher.Decrypt(record.Username, key),
		Password:    c.cipher.Decrypt(record.Password, key),
		LoginMethod: method,
	}
}

func (c *entryCodec) Encode(entries []models.VaultEntry, key *crypto.KeyMaterial) []models.EncryptedRecord {
	records := make([]models.EncryptedRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, c.ToRecord(e, key))
	}
	return records
}

func (c *entryCodec) Decode(records []models.EncryptedRecord, key *crypto.KeyMaterial, method models.LoginMethod) []models.VaultEntry {
	entries := make([]models.VaultEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, c.FromRecord(r, key, method))
	}
	return entries
}
