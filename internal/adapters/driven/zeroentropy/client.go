package zeroentropy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Backend = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL   = domain.DefaultBaseURL
	DefaultTimeout   = domain.DefaultTimeout
	DefaultUserAgent = "zeroentropy-mcp"

	// HeaderRequestID correlates a request with server-side logs.
	HeaderRequestID = "X-Request-ID"

	maxErrorBody = 1 << 20
)

// Config holds configuration for the ZeroEntropy client.
type Config struct {
	// APIKey is the bearer token (required).
	APIKey string

	// BaseURL is the API root (default: https://api.zeroentropy.dev/v1).
	BaseURL string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// RequestsPerSecond enables client-side throttling when positive.
	RequestsPerSecond float64

	// UserAgent is sent with every request (default: zeroentropy-mcp).
	UserAgent string

	// Transport overrides the base HTTP transport. It is always wrapped
	// with OpenTelemetry instrumentation.
	Transport http.RoundTripper
}

// Client calls the ZeroEntropy REST API.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	limiter    *RateLimiter
}

// New creates a new ZeroEntropy client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("zeroentropy: invalid base URL %q", cfg.BaseURL)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(cfg.Transport),
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		limiter:   NewRateLimiter(cfg.RequestsPerSecond),
	}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// post sends in as JSON to endpoint and decodes the response into out.
// A nil out discards the response body.
func (c *Client) post(ctx context.Context, endpoint string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if in == nil {
		in = struct{}{}
	}
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("zeroentropy %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if logger.Enabled(slog.LevelDebug) {
		logger.Debug("zeroentropy request",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"request_id", requestID,
			"duration", time.Since(start),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Path: endpoint, RequestID: requestID}
		if raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil {
			apiErr.Detail = parseDetail(raw)
			apiErr.RetryAfter = retryAfter(resp, time.Now())
		}
		logAPIError(apiErr)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
