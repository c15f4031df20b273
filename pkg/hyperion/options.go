package hyperion

import (
	"time"

	"github.com/samvad-hq/hyperion-client/pkg/httpclient"
)

// Option mutates the Client during New().
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL. A trailing slash is stripped.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient injects a transport; WithTimeout and WithUserAgent are then
// the transport's responsibility.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent of the default transport.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithObserver registers a call observer (metrics, tracing).
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}
