package usecase

import "errors"

// Sentinels returned by every service. Callers wrap them with context via fmt.Errorf("%w: ...").
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable covers a disabled sync, a missing provider and transient provider
	// failures.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrSyncInProgress rejects a sync started while another one is still writing.
	ErrSyncInProgress = errors.New("sync already in progress")
)
