package service

import "errors"

var (
	// ErrValidation wraps every rejected entry, credential or request. The
	// underlying *validators.ValidationError names the field.
	ErrValidation                  = errors.New("validation failed")
	ErrValidationManualCredentials = errors.New("enter manual username and password")

	ErrSessionNotReady     = errors.New("vault session is not ready")
	ErrSessionAlreadyOpen  = errors.New("vault session is already open")
	ErrIndexOutOfRange     = errors.New("entry index out of range")
	ErrUnknownLoginMethod  = errors.New("unknown login method")
	ErrSignInFailed        = errors.New("sign in failed")
	ErrSignOutFailed       = errors.New("sign out failed")
	ErrExportFailed        = errors.New("export failed")
	ErrVaultLoadFailed     = errors.New("vault load failed")
	ErrIdentityNotProvided = errors.New("identity provider is not configured")

	ErrRemoteStoreNotConfigured = errors.New("remote store is not configured")
	ErrLocalStoreNotConfigured  = errors.New("local store is not configured")

	// ErrBackendUnavailable marks a persist or load that never reached, or
	// was refused by, the backend. The in-memory vault is never rolled back.
	ErrBackendUnavailable = errors.New("vault backend unavailable")

	ErrForbidden               = errors.New("access to a different account's vault")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrRemoteRejected          = errors.New("remote store rejected the request")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
