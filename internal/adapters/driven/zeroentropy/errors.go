package zeroentropy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// APIError represents a non-2xx ZeroEntropy API response.
type APIError struct {
	StatusCode int
	// Detail is the backend's error message, verbatim.
	Detail    string
	Path      string
	RequestID string

	// RetryAfter is set on 429 responses that carry a Retry-After header.
	RetryAfter time.Duration
}

// Error returns the backend detail prefixed by its category.
func (e *APIError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	if kind := e.Unwrap(); kind != nil {
		return fmt.Sprintf("%s: %s", kind, detail)
	}
	return fmt.Sprintf("zeroentropy: API error %d: %s", e.StatusCode, detail)
}

// Unwrap maps the status code to a domain error, or nil for other failures.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrAlreadyExists
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAuthInvalid
	default:
		return nil
	}
}

// IsNotFound checks if the error indicates a missing collection, document or page.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// IsConflict checks if the error indicates the entity already exists.
func IsConflict(err error) bool {
	return errors.Is(err, domain.ErrAlreadyExists)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, domain.ErrRateLimited)
}

// logAPIError reports a failed call. Not-found and conflict are only
// logged in verbose mode.
func logAPIError(err *APIError) {
	switch {
	case IsRateLimited(err):
		logger.Warn("zeroentropy rate limited",
			"endpoint", err.Path, "retry_after", err.RetryAfter, "request_id", err.RequestID)
	case IsNotFound(err), IsConflict(err):
		logger.Debug("zeroentropy request rejected",
			"endpoint", err.Path, "status", err.StatusCode, "detail", err.Detail)
	default:
		logger.Warn("zeroentropy request failed",
			"endpoint", err.Path, "status", err.StatusCode, "request_id", err.RequestID, "detail", err.Detail)
	}
}

// errorBody is the JSON error envelope. Detail is either a string or a list
// of validation problems.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// parseDetail extracts the error detail from a response body.
// Falls back to the trimmed raw body when it is not a JSON envelope.
func parseDetail(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var env errorBody
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return string(body)
	}

	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, env.Detail); err != nil {
		return string(env.Detail)
	}
	return buf.String()
}
