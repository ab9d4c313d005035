package workers

import "errors"

var (
	ErrPersisterStopped    = errors.New("persister is stopped")
	ErrPersisterNotStarted = errors.New("persister is not started")
)
