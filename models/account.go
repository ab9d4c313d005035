// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is what the authentication layer hands to a vault session: an
// opaque identifier plus the login method that produced it.
//
// For [LoginMethodGoogle] ID is the provider's stable user id, for
// [LoginMethodManual] it is the typed username.
type Account struct {
	ID     string
	Method LoginMethod
}

// Identity is the state reported by an external identity provider.
type Identity struct {
	AccountID       string
	IsAuthenticated bool
}

// ManualCredentials are typed by the user on the manual login path.
type ManualCredentials struct {
	Username string
	Password string
}
