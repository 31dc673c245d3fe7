// Package zeroentropy provides a driven.Backend adapter for the hosted
// ZeroEntropy document-search API.
//
// Every operation is a single JSON POST to the versioned API root,
// authenticated with a bearer API key. Non-2xx responses become *APIError,
// which unwraps to the matching domain error (not found, conflict, invalid
// input, rate limited, authentication) so callers keep the distinction.
// The client never retries; an optional token bucket throttles outgoing
// requests before they are sent.
package zeroentropy
