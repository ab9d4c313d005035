package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrEmptyAccountID     = errors.New("empty account id")
	ErrNoIdentityToken    = errors.New("no identity token configured")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrEncodingDocument   = errors.New("error encoding vault document")
	ErrDecodingDocument   = errors.New("error decoding vault document")
	ErrInvalidHTTPAddress = errors.New("invalid adapter http address")
)
