package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader correlates a submission with server logs.
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 1 << 20
)

// Response describes a completed round trip.
type Response struct {
	Status    int
	RequestID string
	// Payload is set for non-2xx responses.
	Payload *ErrorPayload
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithBaseURL resolves relative endpoints against base.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.rawBase = strings.TrimSpace(base)
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		c.header.Set(name, value)
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRequestIDFunc overrides request id generation.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// Client posts JSON bodies. It imposes no timeout of its own; the caller's
// context and the underlying http.Client decide when a request gives up.
type Client struct {
	http    *http.Client
	rawBase string
	base    *url.URL
	header  http.Header
	logger  *zap.Logger
	newID   func() string
}

// New constructs a Client.
func New(options ...Option) (*Client, error) {
	c := &Client{
		http:   http.DefaultClient,
		header: make(http.Header),
		logger: zap.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.rawBase != "" {
		base, err := url.Parse(c.rawBase)
		if err != nil {
			return nil, fmt.Errorf("transport: parse base url: %w", err)
		}
		c.base = base
	}
	return c, nil
}

// Resolve returns the absolute URL for endpoint.
func (c *Client) Resolve(endpoint string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return "", fmt.Errorf("transport: parse endpoint: %w", err)
	}
	if c.base == nil || ref.IsAbs() {
		return ref.String(), nil
	}
	return c.base.ResolveReference(ref).String(), nil
}

// PostJSON sends body as JSON to endpoint. Non-2xx statuses are not errors:
// they come back as a Response carrying the decoded payload. Errors are
// returned only for unusable input or when no response was received, the
// latter as *ConnectionError.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body any) (*Response, error) {
	target, err := c.Resolve(endpoint)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("transport: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	for name, values := range c.header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := c.newID()
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("endpoint", target),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &ConnectionError{Endpoint: target, Err: err}
	}
	defer resp.Body.Close()

	out := &Response{
		Status:    resp.StatusCode,
		RequestID: requestID,
	}
	if out.OK() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Debug("request succeeded",
			zap.String("endpoint", target),
			zap.Int("status", resp.StatusCode),
		)
		return out, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		c.logger.Debug("error body unreadable", zap.Error(err))
		data = nil
	}
	out.Payload = DecodeErrorPayload(resp.StatusCode, data)
	c.logger.Debug("request rejected",
		zap.String("endpoint", target),
		zap.Int("status", resp.StatusCode),
		zap.Int("field_errors", len(out.Payload.Errors)),
	)
	return out, nil
}
