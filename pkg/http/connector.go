package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const (
	defaultMaxResponseBytes = 8 << 20
	maxErrorBodyBytes       = 512
)

// Connector exchanges JSON documents with one upstream base URL
type Connector struct {
	baseURL          string
	httpClient       *http.Client
	logger           *zap.Logger
	maxResponseBytes int64
}

type ConnectorConfig struct {
	BaseURL string
	Logger  *zap.Logger
	// MaxResponseBytes caps how much of a response body is read; 0 means 8 MiB
	MaxResponseBytes int64
}

func NewConnector(config *ConnectorConfig, options ...ClientOption) *Connector {
	c := &Connector{
		baseURL:          config.BaseURL,
		httpClient:       newClient(options...),
		logger:           config.Logger,
		maxResponseBytes: config.MaxResponseBytes,
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.maxResponseBytes <= 0 {
		c.maxResponseBytes = defaultMaxResponseBytes
	}
	return c
}

type RequestOpt func(http.Header)

func WithHeader(key, value string) RequestOpt {
	return func(h http.Header) {
		h.Set(key, value)
	}
}

// DoRequest sends reqBody as JSON and decodes a 2xx JSON answer into respBody.
// Non-2xx answers return *HTTPError, transport failures *NetworkError.
func (c *Connector) DoRequest(ctx context.Context, method, endpoint string, reqBody, respBody any, opts ...RequestOpt) error {
	req, err := c.newRequest(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		opt(req.Header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newHTTPError(resp.StatusCode, body)
	}

	if respBody == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Connector) newRequest(ctx context.Context, method, endpoint string, reqBody any) (*http.Request, error) {
	var payload []byte
	if reqBody != nil {
		var err error
		if payload, err = json.Marshal(reqBody); err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		ctx = context.WithValue(ctx, payloadContextKey{}, payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Connector) readBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, c.maxResponseBytes+1))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}
	if int64(len(body)) > c.maxResponseBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", c.maxResponseBytes)
	}
	return body, nil
}

// HTTPError is a non-2xx upstream answer; Message holds the head of its body
type HTTPError struct {
	StatusCode int
	Message    string
}

func newHTTPError(status int, body []byte) *HTTPError {
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return &HTTPError{StatusCode: status, Message: string(bytes.TrimSpace(body))}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NetworkError is a failure below HTTP: dial, TLS, timeout or a broken body
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusCode returns the upstream status carried by err, or 0
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
