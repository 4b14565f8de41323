package domain

import "errors"

var (
	ErrConfigUnreadable = errors.New("config unreadable")
	ErrConfigMalformed  = errors.New("config malformed")
	ErrCacheMalformed   = errors.New("cache malformed")
	ErrCacheUnwritable  = errors.New("cache unwritable")

	// Per-user errors. The orchestrator logs these and moves on.
	ErrNetwork          = errors.New("network error")
	ErrUsernameNotFound = errors.New("username not found in page")
	ErrMissingField     = errors.New("missing expected field in response")
	ErrJSON             = errors.New("json error")
)
