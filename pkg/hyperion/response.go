package hyperion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samvad-hq/hyperion-client/pkg/httpclient"
)

// Response is the envelope of one HTTP answer.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func newResponse(raw httpclient.Response) *Response {
	return &Response{
		StatusCode: raw.StatusCode(),
		Header:     mergeHeaders(raw.Header(), raw.Trailer()),
		Body:       raw.Body(),
	}
}

// mergeHeaders copies header and lets same-named trailer values win.
func mergeHeaders(header, trailer http.Header) http.Header {
	out := make(http.Header, len(header)+len(trailer))
	for k, v := range header {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range trailer {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// interpret classifies resp against ep. For NoContent endpoints the returned
// pointer is nil on success.
func interpret[T any](ep *Endpoint, resp *Response) (*T, error) {
	status := resp.StatusCode
	if status != ep.successCode() {
		return nil, newAPIError(ErrUnexpectedStatus,
			fmt.Sprintf("the HTTP status code of the response was not expected (%d)", status),
			status, resp.Body, resp.Header, nil)
	}
	if ep.NoContent {
		return nil, nil
	}

	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, newAPIError(ErrNullResponse, "response was null which was not expected",
			status, resp.Body, resp.Header, nil)
	}

	out := new(T)
	if err := json.Unmarshal(trimmed, out); err != nil {
		return nil, newAPIError(ErrNullResponse,
			fmt.Sprintf("could not deserialize the response body as %T", *out),
			status, resp.Body, resp.Header, err)
	}
	return out, nil
}
