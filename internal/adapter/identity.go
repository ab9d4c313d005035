// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// TokenIdentityProvider signs the client in with an identity token issued by
// the external provider. The token's "sub" claim is the stable account id and
// the token itself becomes the bearer token of the [ServerAdapter].
//
// The signature is not checked here; the remote vault service verifies it on
// every request.
type TokenIdentityProvider struct {
	server ServerAdapter
	token  string

	mu       sync.RWMutex
	identity models.Identity

	logger *logger.Logger
}

// NewTokenIdentityProvider returns a provider that signs in with token and
// installs it on server.
func NewTokenIdentityProvider(token string, server ServerAdapter, logger *logger.Logger) *TokenIdentityProvider {
	return &TokenIdentityProvider{
		server: server,
		token:  strings.TrimSpace(token),
		logger: logger,
	}
}

// SignIn resolves the account id from the configured token and marks the
// provider as authenticated.
func (p *TokenIdentityProvider) SignIn(ctx context.Context) (models.Identity, error) {
	if err := ctx.Err(); err != nil {
		return models.Identity{}, err
	}
	if p.token == "" {
		return models.Identity{}, ErrNoIdentityToken
	}

	accountID, err := utils.ParseSubjectUnverified(p.token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	p.server.SetToken(p.token)

	p.mu.Lock()
	p.identity = models.Identity{AccountID: accountID, IsAuthenticated: true}
	p.mu.Unlock()

	p.logger.Info().
		Str("func", "TokenIdentityProvider.SignIn").
		Msg("signed in with identity token")
	return p.Current(), nil
}

// SignOut drops the bearer token and forgets the identity.
func (p *TokenIdentityProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.identity.IsAuthenticated {
		return ErrNotSignedIn
	}

	p.server.SetToken("")
	p.identity = models.Identity{}

	p.logger.Info().
		Str("func", "TokenIdentityProvider.SignOut").
		Msg("signed out")
	return nil
}

// Current returns the signed in identity, or the zero value.
func (p *TokenIdentityProvider) Current() models.Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.identity
}
