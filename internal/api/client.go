package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// PathPrefix is prepended to every endpoint path
const PathPrefix = "/api"

// DefaultTimeout applies when no http.Client is supplied
const DefaultTimeout = 30 * time.Second

// maxErrorBody bounds how much of a failed response is read
const maxErrorBody = 64 << 10

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client issues authenticated requests against the backend
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a client for the backend at baseURL (scheme and host,
// without the /api prefix). tokens may be nil for anonymous use.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AuthHeaders composes the headers of a single request. The bearer
// credential is included only when token is non-empty.
func AuthHeaders(token string) http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func (c *Client) currentToken() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// do sends in (when non-nil) as JSON and decodes a 2xx response into out (when non-nil)
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+PathPrefix+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header = AuthHeaders(c.currentToken())

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("%s %s failed: %v", method, path, err)
		return &Error{Message: MessageUnreachable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := parseErrorBody(resp.StatusCode, data)
		log.Printf("%s %s returned %d: %s", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return &Error{
			Status:  resp.StatusCode,
			Message: "Unexpected response from the server",
			Err:     err,
		}
	}
	return nil
}
