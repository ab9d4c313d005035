// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps an identity token. The "sub" claim carries the provider's
// stable account id, which is also the vault document key.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is a cached copy of the "sub" claim.
	AccountID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
