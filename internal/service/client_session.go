// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// SessionState is the lifecycle stage of a [VaultSession].
type SessionState int

const (
	StateUnauthenticated SessionState = iota
	StateLoading
	StateReady
)

func (s SessionState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

const noEditTarget = -1

// SessionOptions tune a [VaultSession].
type SessionOptions struct {
	// Persister tunes the background saver.
	Persister workers.PersisterOptions
	// OnSync, when set, receives every persist result after the session has
	// recorded it.
	OnSync workers.SyncListener
}

type vaultSession struct {
	selector  BackendSelector
	identity  IdentityProvider
	codec     EntryCodec
	deriver   crypto.KeyDeriver
	validator validators.Validator
	opts      SessionOptions

	mu         sync.RWMutex
	state      SessionState
	account    models.Account
	key        *crypto.KeyMaterial
	entries    []models.VaultEntry
	editTarget int
	persister  *workers.Persister

	// syncMu guards lastSync only. The persister goroutine writes it and
	// must never wait on mu, which mutations hold while enqueueing.
	syncMu   sync.RWMutex
	lastSync *models.SyncEvent

	logger *logger.Logger
}

// NewVaultSession builds an unauthenticated session. identity may be nil when
// google login is not available.
func NewVaultSession(
	selector BackendSelector,
	identity IdentityProvider,
	codec EntryCodec,
	deriver crypto.KeyDeriver,
	opts SessionOptions,
	logger *logger.Logger,
) VaultSession {
	return &vaultSession{
		selector:   selector,
		identity:   identity,
		codec:      codec,
		deriver:    deriver,
		validator:  validators.NewVaultValidator(),
		opts:       opts,
		editTarget: noEditTarget,
		logger:     logger,
	}
}

func (s *vaultSession) LoginManual(ctx context.Context, creds models.ManualCredentials) error {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationManualCredentials, err)
	}

	return s.Open(ctx, models.Account{ID: creds.Username, Method: models.LoginMethodManual})
}

func (s *vaultSession) LoginGoogle(ctx context.Context) error {
	if s.identity == nil {
		return ErrIdentityNotProvided
	}

	// an open vault saves with the token it signed in with
	if s.State() != StateUnauthenticated {
		return ErrSessionAlreadyOpen
	}

	identity, err := s.identity.SignIn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignInFailed, err)
	}
	if !identity.IsAuthenticated || identity.AccountID == "" {
		return ErrSignInFailed
	}

	err = s.Open(ctx, models.Account{ID: identity.AccountID, Method: models.LoginMethodGoogle})
	if errors.Is(err, ErrSessionAlreadyOpen) {
		return err
	}
	if err != nil {
		if signOutErr := s.identity.SignOut(ctx); signOutErr != nil {
			s.logger.Err(signOutErr).
				Str("func", "vaultSession.LoginGoogle").
				Msg("sign out after failed open")
		}
		return err
	}
	return nil
}

// Open implements [VaultSession]. The vault is Ready even when it is empty or
// some fields could not be decrypted. When the backend cannot be read the
// session stays unauthenticated so that an empty list never overwrites the
// stored one.
func (s *vaultSession) Open(ctx context.Context, account models.Account) error {
	if err := s.validator.Validate(ctx, account); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	if s.state != StateUnauthenticated {
		s.mu.Unlock()
		return ErrSessionAlreadyOpen
	}
	s.state = StateLoading
	s.mu.Unlock()

	entries, key, persister, err := s.load(ctx, account)
	if err != nil {
		s.mu.Lock()
		s.state = StateUnauthenticated
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.account = account
	s.key = key
	s.entries = entries
	s.editTarget = noEditTarget
	s.persister = persister
	s.state = StateReady
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "vaultSession.Open").
		Str("method", account.Method.String()).
		Int("entries", len(entries)).
		Msg("vault opened")
	return nil
}

func (s *vaultSession) load(ctx context.Context, account models.Account) ([]models.VaultEntry, *crypto.KeyMaterial, *workers.Persister, error) {
	backend, err := s.selector.Select(account)
	if err != nil {
		return nil, nil, nil, err
	}

	records, err := backend.Load(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "vaultSession.load").
			Str("method", account.Method.String()).
			Msg("loading vault failed")
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrVaultLoadFailed, err)
	}

	key := s.deriver.Derive(account.ID)
	entries := s.codec.Decode(records, key, backend.Method())

	persister := workers.NewPersister(s.logger.WithContext(ctx), backend, s.opts.Persister, s.onSync)
	persister.Run()

	return entries, key, persister, nil
}

func (s *vaultSession) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return ErrSessionNotReady
	}

	persister := s.persister
	method := s.account.Method

	s.key.Destroy()
	s.key = nil
	s.entries = nil
	s.editTarget = noEditTarget
	s.account = models.Account{}
	s.persister = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()

	// the pending snapshot is already encrypted
	persister.Stop()

	s.logger.Info().
		Str("func", "vaultSession.Logout").
		Str("method", method.String()).
		Msg("logged out")

	if method == models.LoginMethodGoogle && s.identity != nil {
		if err := s.identity.SignOut(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrSignOutFailed, err)
		}
	}
	return nil
}

func (s *vaultSession) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *vaultSession) Account() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account, s.state == StateReady
}

func (s *vaultSession) Entries() ([]models.VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateReady {
		return nil, ErrSessionNotReady
	}

	out := make([]models.VaultEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Search returns the entries whose site or username contains term, ignoring
// case, together with their list position. An empty term matches everything.
func (s *vaultSession) Search(term string) ([]models.IndexedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateReady {
		return nil, ErrSessionNotReady
	}

	term = strings.ToLower(strings.TrimSpace(term))
	found := make([]models.IndexedEntry, 0, len(s.entries))
	for i, e := range s.entries {
		if term == "" ||
			strings.Contains(strings.ToLower(e.Site), term) ||
			strings.Contains(strings.ToLower(e.Username), term) {
			found = append(found, models.IndexedEntry{Index: i, Entry: e})
		}
	}
	return found, nil
}

func (s *vaultSession) Add(entry models.VaultEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.prepare(entry)
	if err != nil {
		return err
	}

	s.entries = append(s.entries, entry)
	return s.persist("vaultSession.Add")
}

// Update implements [VaultSession]. An index outside the list leaves it
// unchanged and nothing is persisted.
func (s *vaultSession) Update(index int, entry models.VaultEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.prepare(entry)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	s.entries[index] = entry
	return s.persist("vaultSession.Update")
}

func (s *vaultSession) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrSessionNotReady
	}
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	entries := make([]models.VaultEntry, 0, len(s.entries)-1)
	entries = append(entries, s.entries[:index]...)
	entries = append(entries, s.entries[index+1:]...)
	s.entries = entries

	switch {
	case s.editTarget == index:
		s.editTarget = noEditTarget
	case s.editTarget > index:
		s.editTarget--
	}

	return s.persist("vaultSession.Delete")
}

// Export returns the plaintext list as JSON indented by two spaces. The
// backend is not touched.
func (s *vaultSession) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateReady {
		return nil, ErrSessionNotReady
	}

	entries := s.entries
	if entries == nil {
		entries = []models.VaultEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return data, nil
}

func (s *vaultSession) BeginEdit(index int) (models.VaultEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return models.VaultEntry{}, ErrSessionNotReady
	}
	if index < 0 || index >= len(s.entries) {
		return models.VaultEntry{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	s.editTarget = index
	return s.entries[index], nil
}

func (s *vaultSession) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editTarget = noEditTarget
}

func (s *vaultSession) EditTarget() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.editTarget == noEditTarget {
		return 0, false
	}
	return s.editTarget, true
}

func (s *vaultSession) Save(entry models.VaultEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.prepare(entry)
	if err != nil {
		return err
	}

	if s.editTarget != noEditTarget {
		if s.editTarget >= len(s.entries) {
			s.editTarget = noEditTarget
			return ErrIndexOutOfRange
		}
		s.entries[s.editTarget] = entry
	} else {
		s.entries = append(s.entries, entry)
	}
	s.editTarget = noEditTarget

	return s.persist("vaultSession.Save")
}

func (s *vaultSession) LastSync() (models.SyncEvent, bool) {
	s.syncMu.RLock()
	defer s.syncMu.RUnlock()

	if s.lastSync == nil {
		return models.SyncEvent{}, false
	}
	return *s.lastSync, true
}

// prepare checks that the session is ready, validates entry and normalizes
// it. Callers hold mu.
func (s *vaultSession) prepare(entry models.VaultEntry) (models.VaultEntry, error) {
	if s.state != StateReady {
		return models.VaultEntry{}, ErrSessionNotReady
	}

	if entry.LoginMethod == "" {
		entry.LoginMethod = s.account.Method
	}
	if err := s.validator.Validate(context.Background(), entry); err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return normalizeEntry(entry), nil
}

// persist re-encrypts the whole list and hands it to the persister. Callers
// hold mu.
func (s *vaultSession) persist(caller string) error {
	records := s.codec.Encode(s.entries, s.key)

	seq, err := s.persister.Enqueue(records)
	if err != nil {
		s.logger.Err(err).Str("func", caller).Msg("scheduling save failed")
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	s.logger.Debug().
		Str("func", caller).
		Uint64("seq", seq).
		Int("entries", len(records)).
		Msg("save scheduled")
	return nil
}

func (s *vaultSession) onSync(event models.SyncEvent) {
	s.syncMu.Lock()
	s.lastSync = &event
	s.syncMu.Unlock()

	if s.opts.OnSync != nil {
		s.opts.OnSync(event)
	}
}

func normalizeEntry(entry models.VaultEntry) models.VaultEntry {
	entry.Site = strings.TrimSpace(entry.Site)
	entry.Username = strings.TrimSpace(entry.Username)
	entry.Password = strings.TrimSpace(entry.Password)

	if entry.LoginMethod == models.LoginMethodGoogle {
		entry.Password = ""
	}
	return entry
}
