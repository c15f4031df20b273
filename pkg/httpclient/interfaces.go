package httpclient

import (
	"context"
	"net/http"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	Header() http.Header
	Trailer() http.Header
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// Implementations must be safe for concurrent use.
type Client interface {
	Do(ctx context.Context, method, url string, header http.Header, body []byte) (Response, error)
}
