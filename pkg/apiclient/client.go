package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is used when New is called with an empty base URL.
const DefaultBaseURL = "http://localhost:3000"

const defaultHTTPTimeout = 30 * time.Second

// Client issues requests against a fixed base URL and decodes JSON responses.
// A Client holds no mutable state after New returns and is safe for
// concurrent use.
type Client struct {
	baseURL     string
	http        HTTPClient
	std         *http.Client // default client, nil once WithHTTPClient replaces it
	logger      zerolog.Logger
	statusCheck bool
	debug       bool
	userAgent   string
}

// New creates a Client for baseURL. The URL is used verbatim as a prefix for
// every request path and is not validated; a malformed URL surfaces as a
// *NetworkError on the first call.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	std := &http.Client{Timeout: defaultHTTPTimeout}
	c := &Client{
		baseURL:   baseURL,
		http:      std,
		std:       std,
		logger:    zerolog.Nop(),
		userAgent: defaultUserAgent(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.debug {
		c.http = &debugClient{base: c.http, logger: c.logger}
	}

	return c, nil
}

// BaseURL returns the prefix prepended to every request path.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET to baseURL+path and returns the decoded JSON body.
// Objects decode to map[string]any, arrays to []any and numbers to float64.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	var out any
	if err := c.GetInto(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInto issues a GET to baseURL+path and decodes the JSON body into v.
func (c *Client) GetInto(ctx context.Context, path string, v any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.decode(http.MethodGet, c.baseURL+path, resp, v)
}

// Post encodes body as JSON, POSTs it to baseURL+path and returns the decoded
// JSON response.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	var out any
	if err := c.PostInto(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostInto encodes body as JSON, POSTs it to baseURL+path and decodes the
// JSON response into v.
func (c *Client) PostInto(ctx context.Context, path string, body, v any) error {
	payload, err := encodeJSON(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	return c.decode(http.MethodPost, c.baseURL+path, resp, v)
}

// do builds and sends a single request. A non-nil payload is sent as
// application/json. The caller owns the returned response body.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	url := c.baseURL + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: url, Err: fmt.Errorf("create request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	observeRequest(method, resp, err, elapsed)

	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("url", url).
			Str("request_id", requestID).
			Dur("duration", elapsed).
			Msg("request failed")
		return nil, &NetworkError{Method: method, URL: url, Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", elapsed).
		Msg("request completed")

	return resp, nil
}

// decode reads and closes the response body and unmarshals it into v.
func (c *Client) decode(method, url string, resp *http.Response, v any) error {
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	if c.statusCheck && resp.StatusCode/100 != 2 {
		return &StatusError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: string(data)}
	}

	if err := json.Unmarshal(data, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &SchemaError{Index: -1, Field: typeErr.Field, Reason: "unexpected " + typeErr.Value, Err: err}
		}
		return &DecodeError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: data, Err: err}
	}
	return nil
}

// encodeJSON marshals v without HTML escaping and without a trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func defaultUserAgent() string {
	return fmt.Sprintf("photom-apiclient/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
