package apiclient

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient sets a custom HTTP client for API communication.
// If not provided, an *http.Client with a 30 second timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Client) error {
		if client == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = client
		c.std = nil
		return nil
	}
}

// WithHTTPTimeout sets the timeout of the default HTTP client.
// It has no effect on a client supplied through WithHTTPClient.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		if c.std != nil {
			c.std.Timeout = d
		}
		return nil
	}
}

// WithLogger sets the logger used for request logging.
// If not provided, nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithStatusCheck makes Get, Post and the account listing return a
// *StatusError for non-2xx responses instead of decoding the body.
func WithStatusCheck(enabled bool) Option {
	return func(c *Client) error {
		c.statusCheck = enabled
		return nil
	}
}

// WithDebugLogging dumps every request and response at debug level through
// the client's logger. Dumps include headers and bodies; do not enable it
// where tokens must not reach the logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}
