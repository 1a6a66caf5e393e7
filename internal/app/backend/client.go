// Package backend is the HTTP client for the hotel REST API. Every call
// carries the signed-in user's bearer token and runs under the caller's
// context, so a cancelled page request aborts its backend call.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/system/requestid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// DefaultTimeout caps a single backend round trip when none is configured.
const DefaultTimeout = 10 * time.Second

// Client talks to one backend origin.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests use the one
// from httptest.Server).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New builds a Client for baseURL. A trailing slash is ignored.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured origin.
func (c *Client) BaseURL() string { return c.baseURL }

// call describes one backend request.
type call struct {
	resource    string // metrics label
	method      string
	path        string
	query       url.Values
	token       string
	body        []byte
	contentType string
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// withToken returns an *http.Client whose transport adds the bearer header.
func (c *Client) withToken(token string) *http.Client {
	if token == "" {
		return c.http
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.http.Transport,
		},
		Timeout:       c.http.Timeout,
		CheckRedirect: c.http.CheckRedirect,
		Jar:           c.http.Jar,
	}
}

func jsonBody(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("backend: encode body: %w", err)
	}
	return b, nil
}

// do sends the call and decodes a 2xx JSON body into out (nil to discard).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	var body io.Reader
	if cl.body != nil {
		body = bytes.NewReader(cl.body)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, c.endpoint(cl.path, cl.query), body)
	if err != nil {
		return fmt.Errorf("backend: build %s %s: %w", cl.method, cl.path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.Header, requestid.FromOrNew(ctx))
	if cl.body != nil {
		ct := cl.contentType
		if ct == "" {
			ct = "application/json"
		}
		req.Header.Set("Content-Type", ct)
	}

	started := time.Now()
	resp, err := c.withToken(cl.token).Do(req)
	if err != nil {
		observe(cl.resource, cl.method, 0, started)
		c.log.Warn("backend request failed",
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.Error(err))
		return &transportError{op: cl.method + " " + cl.path, err: err}
	}
	defer resp.Body.Close()
	observe(cl.resource, cl.method, resp.StatusCode, started)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			Method:     cl.method,
			Path:       cl.path,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(raw)),
		}
		c.log.Info("backend returned error status",
			zap.String("method", cl.method),
			zap.String("path", cl.path),
			zap.Int("status", resp.StatusCode))
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return fmt.Errorf("backend: %s %s: empty response body", cl.method, cl.path)
		}
		return fmt.Errorf("backend: decode %s %s: %w", cl.method, cl.path, err)
	}
	return nil
}

// Ping reports whether the backend answers HTTP at all. Any response,
// including 401 or 404, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	err := c.do(ctx, call{resource: "ping", method: http.MethodGet, path: "/"}, nil)
	var apiErr *APIError
	if err != nil && !errors.As(err, &apiErr) {
		return err
	}
	return nil
}
