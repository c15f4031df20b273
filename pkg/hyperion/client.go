package hyperion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samvad-hq/hyperion-client/pkg/httpclient"
)

const (
	// DefaultBaseURL points at a public WAX Hyperion history node.
	DefaultBaseURL = "https://api.wax.liquidstudios.io"

	DefaultTimeout = 30 * time.Second
)

// Observer is notified after every call that reached the transport.
type Observer interface {
	ObserveCall(endpoint string, statusCode int, elapsed time.Duration, err error)
}

// Client talks to one Hyperion deployment. It is safe for concurrent use.
type Client struct {
	baseURL   string
	http      httpclient.Client
	timeout   time.Duration
	userAgent string
	log       Logger
	observer  Observer

	Accounts *AccountsService
	Stats    *StatsService
	Status   *StatusService
	History  *HistoryService
	State    *StateService
	Chain    *ChainService
}

// New constructs a Client. Without options it targets DefaultBaseURL through
// a resty transport with DefaultTimeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		log:     noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout).SetUserAgent(c.userAgent)
	}

	c.Accounts = &AccountsService{c: c}
	c.Stats = &StatsService{c: c}
	c.Status = &StatusService{c: c}
	c.History = &HistoryService{c: c}
	c.State = &StateService{c: c}
	c.Chain = &ChainService{c: c}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Call invokes any endpoint of the table by name and returns the raw JSON body.
func (c *Client) Call(ctx context.Context, name string, args Args) (json.RawMessage, error) {
	ep, ok := endpointIdx[name]
	if !ok {
		return nil, fmt.Errorf("hyperion: unknown endpoint %q", name)
	}
	out, err := execute[json.RawMessage](ctx, c, ep, args)
	if err != nil || out == nil {
		return nil, err
	}
	return *out, nil
}

// execute is the single request/response path shared by every endpoint method.
func execute[T any](ctx context.Context, c *Client, ep *Endpoint, args Args) (*T, error) {
	req, err := BuildRequest(c.baseURL, ep, args)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := c.http.Do(ctx, req.Method, req.URL, req.Header, req.Body)
	elapsed := time.Since(start)
	if err != nil {
		c.observe(ep.Name, 0, elapsed, err)
		c.log.WarnObj("hyperion call failed", "hyperion_transport_error", map[string]any{
			"endpoint": ep.Name,
			"url":      req.URL,
			"error":    err.Error(),
		})
		return nil, err
	}

	resp := newResponse(raw)
	out, err := interpret[T](ep, resp)
	c.observe(ep.Name, resp.StatusCode, elapsed, err)
	if err != nil {
		c.log.WarnObj("hyperion call rejected", "hyperion_api_error", map[string]any{
			"endpoint": ep.Name,
			"url":      req.URL,
			"status":   resp.StatusCode,
			"error":    err.Error(),
		})
		return nil, err
	}
	c.log.DebugObj("hyperion call completed", "hyperion_call", map[string]any{
		"endpoint":   ep.Name,
		"status":     resp.StatusCode,
		"elapsed_ms": elapsed.Milliseconds(),
		"bytes":      len(resp.Body),
	})
	return out, nil
}

func (c *Client) observe(endpoint string, status int, elapsed time.Duration, err error) {
	if c.observer != nil {
		c.observer.ObserveCall(endpoint, status, elapsed, err)
	}
}
