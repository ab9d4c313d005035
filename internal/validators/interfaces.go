// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault input before it reaches a session or the
// document store: entries, manual credentials, accounts and save requests.
//
// Failures are [*ValidationError] values naming the offending field and
// wrapping one of the sentinels in errors.go.
package validators

import "context"

// Validator validates obj. When fields are given only those fields are
// checked; otherwise every rule for the type applies. Unsupported types
// return [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
