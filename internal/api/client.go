package api

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

	"go.uber.org/zap"
)

// Client talks to the Socratic backend. All request and response
// bodies are JSON. The zero value is not usable; construct with New.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	retry   retrier
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a logger for request/response logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRetry configures the retry policy applied to GET requests.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = retrier{cfg: cfg} }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
		logger:  zap.NewNop(),
		retry:   retrier{cfg: DefaultRetryConfig()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET with retries and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.retry.do(ctx, func() error {
		return c.roundTrip(ctx, http.MethodGet, path, query, nil, out)
	})
}

// post performs a single POST (never retried) and decodes the JSON
// response into out. out may be nil when the body is irrelevant.
func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.roundTrip(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &UnavailableError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UnavailableError{Err: err}
	}

	c.logger.Info("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &InvalidResponseError{Err: err}
	}
	return nil
}

// extractDetail pulls the "detail" message out of an error body.
// Bodies that are not JSON, or carry no detail, yield "".
func extractDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}
