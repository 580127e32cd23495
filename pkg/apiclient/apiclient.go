// Package apiclient provides a small JSON-over-HTTP client bound to a single
// base URL. One Client is created at startup and shared by every tool handler;
// it holds no per-call state and is safe for concurrent use.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every remote call unless the Client is built with an
// explicit timeout.
const DefaultTimeout = 30 * time.Second

// DefaultMessageFields is the order in which an error response body is
// searched for a human-readable message.
var DefaultMessageFields = []string{"message", "detail", "error"}

// APIError is returned when the remote service responds with a non-2xx
// status. Message holds the best human-readable description found in the
// response body, falling back to the HTTP status text.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}

// NetworkError is returned when no response was received at all: connection
// failure, timeout, or a cancelled context.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// Client is a JSON HTTP client for a single remote service.
type Client struct {
	BaseURL    string            // API base URL (no trailing slash).
	HTTPClient *http.Client      // HTTP client; falls back to http.DefaultClient.
	Headers    map[string]string // Extra headers applied to every request.

	// MessageFields are the error-body fields tried in order when building
	// an APIError message. Empty means DefaultMessageFields.
	MessageFields []string
}

// New creates a Client for the given base URL with a bounded per-call
// timeout. A non-positive timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// GetJSON sends a GET to path with optional query parameters and unmarshals
// the response body into dest. A dest of *json.RawMessage captures the body
// verbatim. If dest is nil the body is discarded after the status check.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, dest any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}

	return c.do(req, dest)
}

// PostJSON marshals payload as JSON, sends a POST to path, and unmarshals
// the response body into dest. Semantics of dest match GetJSON.
func (c *Client) PostJSON(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("apiclient: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)

		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    c.extractMessage(respBody, resp.StatusCode),
			Body:       string(respBody),
		}
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// extractMessage pulls a human-readable message out of an error response
// body. The configured fields are tried in order against a top-level JSON
// object; anything else falls back to the HTTP status text.
func (c *Client) extractMessage(body []byte, status int) string {
	fields := c.MessageFields
	if len(fields) == 0 {
		fields = DefaultMessageFields
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, f := range fields {
			if s, ok := obj[f].(string); ok && s != "" {
				return s
			}
		}
	}

	return http.StatusText(status)
}
