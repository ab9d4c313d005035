// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldSite            = "site"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldLoginMethod     = "login_method"
	FieldManualUsername  = "manual_username"
	FieldManualPassword  = "manual_password"
	FieldAccountID       = "account_id"
	FieldPasswords       = "passwords"
	FieldPasswordsLength = "passwords_length"
)

// VaultValidator validates vault entries, manual login credentials, accounts
// and remote save requests.
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultEntry:
		return v.validateEntry(value, fields...)
	case *models.VaultEntry:
		return v.validateEntry(*value, fields...)

	case models.ManualCredentials:
		return v.validateCredentials(value, fields...)
	case *models.ManualCredentials:
		return v.validateCredentials(*value, fields...)

	case models.Account:
		return v.validateAccount(value, fields...)
	case *models.Account:
		return v.validateAccount(*value, fields...)

	case models.SaveDocumentRequest:
		return v.validateSaveRequest(value, fields...)
	case *models.SaveDocumentRequest:
		return v.validateSaveRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateEntry(entry models.VaultEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLoginMethod, FieldSite, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLoginMethod:
			if !entry.LoginMethod.Valid() {
				return newValidationError(f, ErrInvalidLoginMethod)
			}
		case FieldSite:
			if isBlank(entry.Site) {
				return newValidationError(f, ErrEmptySite)
			}
		case FieldUsername:
			if isBlank(entry.Username) {
				return newValidationError(f, ErrEmptyUsername)
			}
		case FieldPassword:
			// google credentials live with the identity provider
			if entry.LoginMethod == models.LoginMethodManual && isBlank(entry.Password) {
				return newValidationError(f, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateCredentials(creds models.ManualCredentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldManualUsername, FieldManualPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldManualUsername:
			if creds.Username == "" {
				return newValidationError(f, ErrEmptyManualUsername)
			}
		case FieldManualPassword:
			if creds.Password == "" {
				return newValidationError(f, ErrEmptyManualPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateAccount(acc models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldLoginMethod}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if acc.ID == "" {
				return newValidationError(f, ErrEmptyAccountID)
			}
		case FieldLoginMethod:
			if !acc.Method.Valid() {
				return newValidationError(f, ErrInvalidLoginMethod)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateSaveRequest(req models.SaveDocumentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPasswords, FieldPasswordsLength}
	}

	for _, f := range fields {
		switch f {
		case FieldPasswords:
			if req.Passwords == nil {
				return newValidationError(f, ErrNilPasswords)
			}
		case FieldPasswordsLength:
			if req.Length != len(req.Passwords) {
				return newValidationError(f, ErrLengthMismatch)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
