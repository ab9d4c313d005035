// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySite           = errors.New("site is required")
	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptyPassword       = errors.New("password is required for manual entries")
	ErrInvalidLoginMethod  = errors.New("invalid login method")
	ErrEmptyManualUsername = errors.New("manual login username is required")
	ErrEmptyManualPassword = errors.New("manual login password is required")
	ErrEmptyAccountID      = errors.New("account id is required")
	ErrNilPasswords        = errors.New("passwords list is required")
	ErrLengthMismatch      = errors.New("passwords length does not match")
)
