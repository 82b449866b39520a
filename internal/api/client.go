// ABOUTME: HTTP client for the Brightboard admin API
// ABOUTME: Attaches the bearer credential to every call and evicts the session on 401

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const defaultTimeout = 30 * time.Second

// Client is the authenticated gateway to the admin API. All resource
// methods funnel through do(), which attaches the configured credential
// and translates failures into the error taxonomy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// Option configures the Client.
type Option func(*Client)

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets a structured logger for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates an API client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// SetToken configures the credential attached to subsequent requests.
// Takes effect immediately for requests issued after the call.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the configured credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// SetUnauthorizedHook registers the session eviction callback invoked when
// an authenticated call comes back 401. The hook must be idempotent.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do sends one API request and returns the raw response body for 2xx
// statuses. 401 triggers eviction and a session-expired error; 5xx maps to
// a server error; any other non-2xx is relayed as a StatusError.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	if c.baseURL == "" {
		return nil, protocolError("API base URL is not configured")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.requestError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api call")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized:
		c.evict()
		return nil, sessionExpiredError()
	case resp.StatusCode >= 500:
		return nil, serverError(resp.StatusCode, serverMessage(data))
	default:
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}
}

// evict invokes the registered session eviction hook, if any.
func (c *Client) evict() {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// requestError converts transport and context errors into the taxonomy.
func (c *Client) requestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return networkError(fmt.Errorf("request canceled"))
	}
	if ctx.Err() == context.DeadlineExceeded {
		return networkError(fmt.Errorf("request timed out"))
	}
	return networkError(fmt.Errorf("cannot connect to %s: %w", c.baseURL, err))
}

// serverMessage pulls a human-readable message out of a backend error body.
// Backends are inconsistent about the field name.
func serverMessage(body []byte) string {
	for _, key := range []string{"message", "error"} {
		if v := gjson.GetBytes(body, key); v.Exists() && v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) put(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, payload)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}
