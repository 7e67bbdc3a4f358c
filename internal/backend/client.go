// Package backend is the outbound HTTP client for the external API that owns
// all business data. Every call carries the caller's verified session token
// as a bearer credential; this package is the only sanctioned path to the
// backend for authenticated requests.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/espacosmart/portal-cliente/internal/errors"
)

// Request describes a single backend call. Endpoint is the path segment
// relative to the configured base URL (e.g. "user/getUserData"); Headers are
// merged into the outbound request but Authorization is always overwritten
// with the session token.
type Request struct {
	Endpoint string
	Method   string
	Headers  http.Header
	Body     any // marshaled to JSON when non-nil
}

// Client performs authenticated calls against the backend API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Options configures a Client.
type Options struct {
	// BaseURL is the backend base URL without trailing slash.
	BaseURL string
	// Timeout bounds each call; zero means 15s.
	Timeout time.Duration
	// Logger for call failures; nil falls back to slog.Default().
	Logger *slog.Logger
}

// NewClient creates a backend client with a bounded-timeout HTTP client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  opts.Logger,
	}
}

// BaseURL returns the configured backend base URL without trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) log() *slog.Logger {
	if c != nil && c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// Do executes the request with the given bearer token and returns the raw
// JSON body. Failures are classified (backend_unavailable, timeout, decode)
// for logging, but callers at the HTTP boundary collapse all of them into
// the same fallback redirect; response status codes are deliberately not
// branched on here.
func (c *Client) Do(ctx context.Context, bearerToken string, req Request) (json.RawMessage, error) {
	if bearerToken == "" {
		return nil, apperrors.Unauthenticated("backend call without session token")
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, apperrors.Internal("encode request body", err)
		}
		body = bytes.NewReader(payload)
	}

	url := c.baseURL + "/" + strings.TrimLeft(req.Endpoint, "/")
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, apperrors.Internal("build backend request", err)
	}

	for key, values := range req.Headers {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	// Always ours, never the caller's.
	httpReq.Header.Set("Authorization", "Bearer "+bearerToken)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, apperrors.Timeout(fmt.Sprintf("backend call %s %s", method, req.Endpoint), err)
		}
		return nil, apperrors.BackendUnavailable(fmt.Sprintf("backend call %s %s", method, req.Endpoint), err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log().WarnContext(ctx, "close backend response body", "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.BackendUnavailable("read backend response", err)
	}

	if !json.Valid(raw) {
		return nil, apperrors.Decode(fmt.Sprintf("backend response for %s is not JSON", req.Endpoint), nil)
	}

	return json.RawMessage(raw), nil
}

// DoJSON executes the request and decodes the JSON body into dst.
func (c *Client) DoJSON(ctx context.Context, bearerToken string, req Request, dst any) error {
	raw, err := c.Do(ctx, bearerToken, req)
	if err != nil {
		return err
	}
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperrors.Decode(fmt.Sprintf("decode backend response for %s", req.Endpoint), err)
	}
	return nil
}

// isTimeout reports whether err is a net-level timeout.
func isTimeout(err error) bool {
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
