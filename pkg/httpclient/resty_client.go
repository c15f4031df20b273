package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(timeout)}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	return newRestyBaseClient(timeout)
}

// newRestyBaseClient creates a new resty.Client with the specified timeout.
// Retries stay disabled: every call is a single attempt.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	return c
}

// SetUserAgent sets the User-Agent sent with every request.
func (r *RestyClient) SetUserAgent(ua string) *RestyClient {
	if ua != "" {
		r.client.SetHeader("User-Agent", ua)
	}
	return r
}

// Do performs an HTTP request with the specified context, method, URL, headers and raw body.
func (r *RestyClient) Do(ctx context.Context, method, url string, header http.Header, body []byte) (Response, error) {
	req := r.client.R().SetContext(ctx)
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if len(body) > 0 {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte        { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int     { return r.resp.StatusCode() }
func (r *restyResponseAdapter) Header() http.Header { return r.resp.Header() }

func (r *restyResponseAdapter) Trailer() http.Header {
	if r.resp.RawResponse == nil {
		return nil
	}
	return r.resp.RawResponse.Trailer
}
