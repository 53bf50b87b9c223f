package agentone

import "errors"

// Common errors for session and client storage operations.
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidStoreType = errors.New("invalid store type")
	ErrNotFound         = errors.New("key not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrLoginSuperseded  = errors.New("login superseded by a newer attempt")
	ErrMissingFields    = errors.New("required fields missing")
)
