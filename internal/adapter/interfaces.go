// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the remote vault service.
//
// [ServerAdapter] hides the transport from the service layer. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]) and a token based
// identity provider ([NewTokenIdentityProvider]) that tells the service which
// account the remote vault belongs to.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote vault
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// GetDocument fetches the vault document of accountID. A missing
	// document is reported as [ErrNotFound].
	GetDocument(ctx context.Context, accountID string) (models.VaultDocument, error)

	// PutDocument replaces the whole vault document of accountID with records.
	// A transport integrity hash covering the records is attached
	// automatically.
	PutDocument(ctx context.Context, accountID string, records []models.EncryptedRecord) error
}
