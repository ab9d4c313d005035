package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock -exclude_interfaces=BackendSelector,VaultSession

// EntryCodec converts between plaintext entries and their encrypted form,
// one field at a time.
type EntryCodec interface {
	// ToRecord encrypts site, username and password independently. The
	// login method is dropped.
	ToRecord(entry models.VaultEntry, key *crypto.KeyMaterial) models.EncryptedRecord

	// FromRecord decrypts every field independently and attaches method.
	// A field that cannot be decrypted comes back as "".
	FromRecord(record models.EncryptedRecord, key *crypto.KeyMaterial, method models.LoginMethod) models.VaultEntry

	// Encode applies ToRecord to every entry, keeping order.
	Encode(entries []models.VaultEntry, key *crypto.KeyMaterial) []models.EncryptedRecord

	// Decode applies FromRecord to every record, keeping order.
	Decode(records []models.EncryptedRecord, key *crypto.KeyMaterial, method models.LoginMethod) []models.VaultEntry
}

// Backend is where a session's records live. Every Save replaces the whole
// list.
type Backend interface {
	workers.Saver

	// Load returns the stored records, or an empty list when nothing has
	// been saved yet.
	Load(ctx context.Context) ([]models.EncryptedRecord, error)
}

// BackendSelector picks the backend that owns an account's vault.
type BackendSelector interface {
	// Select returns the remote backend keyed by account.ID for google
	// accounts and the local backend for manual ones.
	Select(account models.Account) (Backend, error)
}

// IdentityProvider is the external authentication collaborator of google
// sessions.
type IdentityProvider interface {
	SignIn(ctx context.Context) (models.Identity, error)
	SignOut(ctx context.Context) error
	Current() models.Identity
}

// VaultSession holds one user's decrypted vault in memory together with the
// key material and the backend every change is written to.
//
// Mutations change the in-memory list and return at once; the re-encrypted
// list is persisted in the background in mutation order. Their results are
// reported as [models.SyncEvent] values.
type VaultSession interface {
	// LoginManual opens the local vault of creds.Username. Both fields must
	// be set, but only the username feeds the key.
	LoginManual(ctx context.Context, creds models.ManualCredentials) error
	// LoginGoogle signs in with the identity provider and opens the remote
	// vault of the returned account.
	LoginGoogle(ctx context.Context) error
	// Open loads and decrypts the vault of account.
	Open(ctx context.Context, account models.Account) error
	// Logout discards the key material, the list and the edit target, waits
	// for outstanding saves and ends the external session of google
	// accounts.
	Logout(ctx context.Context) error

	State() SessionState
	Account() (models.Account, bool)

	Entries() ([]models.VaultEntry, error)
	Search(term string) ([]models.IndexedEntry, error)
	Add(entry models.VaultEntry) error
	// Update replaces the entry at index. An index outside the list returns
	// ErrIndexOutOfRange and leaves the list untouched.
	Update(index int, entry models.VaultEntry) error
	Delete(index int) error
	Export() ([]byte, error)

	BeginEdit(index int) (models.VaultEntry, error)
	CancelEdit()
	EditTarget() (int, bool)
	// Save updates the edit target when one is set and adds entry otherwise.
	// The edit target is cleared either way.
	Save(entry models.VaultEntry) error

	// LastSync returns the most recent persist result.
	LastSync() (models.SyncEvent, bool)
}
