// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_service_mock.go -package=mock -exclude_interfaces=VaultServiceWrapper

// VaultService serves the remote vault documents, one per account.
type VaultService interface {
	// GetVault returns the account's document. A missing document is
	// reported as store.ErrDocumentNotFound.
	GetVault(ctx context.Context, accountID string) (models.VaultDocument, error)
	// SaveVault replaces the account's document with req.Passwords.
	SaveVault(ctx context.Context, accountID string, req models.SaveDocumentRequest) error
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}
