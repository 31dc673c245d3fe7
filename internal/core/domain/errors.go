package domain

import "errors"

// Domain errors represent failures the caller can act on.
// Backend errors unwrap to one of these so the distinction survives the trip
// through the tool layer.
var (
	// ErrNotFound indicates a referenced collection, document or page does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a collection or document path is already taken.
	ErrAlreadyExists = errors.New("conflict")

	// ErrInvalidInput indicates malformed or out-of-range arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates the server runs without a backend (development mode).
	// Every operation fails with this error instead of touching a nil client.
	ErrNotConfigured = errors.New("zeroentropy client not configured: set ZEROENTROPY_API_KEY")

	// ErrMissingAPIKey indicates the API key is absent outside development mode.
	ErrMissingAPIKey = errors.New("ZEROENTROPY_API_KEY environment variable is required")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthInvalid indicates the API key was rejected.
	ErrAuthInvalid = errors.New("authentication invalid")
)
