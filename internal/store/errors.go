package store

import "errors"

// Sentinel errors returned by stores and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by a KeyValueStore when no value exists for
	// the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDocumentNotFound is returned when an account has never saved a
	// vault document.
	ErrDocumentNotFound = errors.New("vault document not found")

	// ErrDocumentNotSaved is returned when a save completed without error but
	// affected no rows.
	ErrDocumentNotSaved = errors.New("vault document was not saved")

	// ErrCorruptDocument is returned when a stored document cannot be decoded.
	ErrCorruptDocument = errors.New("vault document is corrupt")

	// ErrUnknownLocalDriver is returned for an unsupported local store driver.
	ErrUnknownLocalDriver = errors.New("unknown local store driver")
)

// Low-level storage operation errors. These are returned (or wrapped) when an
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrObjectStorage is returned when an object storage call fails.
	ErrObjectStorage = errors.New("object storage error")
)
