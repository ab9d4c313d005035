// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the bearer token itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	ErrInvalidJSON          = errors.New("invalid JSON was passed")
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
