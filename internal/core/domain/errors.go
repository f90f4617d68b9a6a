package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnknownPrompt indicates the requested prompt key exists in neither
	// configuration section. The interactive loop reports it and continues.
	ErrUnknownPrompt = errors.New("unknown prompt key")

	// ErrInvalidConfig indicates the prompt configuration or application
	// settings are missing or malformed. The run aborts.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoUsableResult indicates every concurrent request failed or
	// returned nothing worth showing.
	ErrNoUsableResult = errors.New("no usable result")

	// ErrSearchUnavailable indicates the search backend is not configured.
	ErrSearchUnavailable = errors.New("search engine unavailable")

	// ErrRateLimited indicates the backend rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
