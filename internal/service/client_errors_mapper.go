// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrForbidden, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrEmptyAccountID):
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	}

	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}
