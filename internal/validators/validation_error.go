// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "fmt"

// ValidationError names the field that failed and wraps the sentinel reason.
// Use [errors.Is] against the sentinels in this package to inspect Reason.
type ValidationError struct {
	Field  string
	Reason error
}

func newValidationError(field string, reason error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %v", e.Field, e.Reason)
}

// Unwrap exposes Reason to [errors.Is].
func (e *ValidationError) Unwrap() error {
	return e.Reason
}
