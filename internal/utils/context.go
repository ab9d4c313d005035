// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the authenticated account id in
// the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AccountIDCtxKey, "uid-1")
var AccountIDCtxKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the authenticated account id.
//
// Returns ok == false when the value is missing, empty or of another type.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok && accountID != ""
}
