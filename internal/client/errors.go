package client

import "errors"

var (
	ErrUnknownMode      = errors.New("unknown login mode, expected google or manual")
	ErrUsernameRequired = errors.New("--user is required for manual login")
	ErrInvalidIndex     = errors.New("entry number must be a positive integer")
	ErrUnknownCopyField = errors.New("copy field must be username or password")
)
