package hyperion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	// Argument errors, detected before any network I/O.
	ErrMissingParameter = errors.New("required parameter missing")
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrInvalidParameter = errors.New("invalid parameter value")

	// Client errors, carried by *APIError.
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNullResponse     = errors.New("null response")
)

// ArgumentError reports a parameter that prevented the request from being built.
type ArgumentError struct {
	Endpoint string
	Param    string
	Err      error
	Detail   string
}

func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("hyperion: %s: parameter %q: %v", e.Endpoint, e.Param, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// APIError is returned when the API answered with a status other than the
// endpoint's success code, or when a success body could not be decoded.
type APIError struct {
	Message    string
	StatusCode int
	Body       string
	Headers    http.Header
	// Err is the optional inner cause (e.g. a JSON decode error).
	Err error

	kind error
}

func newAPIError(kind error, msg string, status int, body []byte, headers http.Header, cause error) *APIError {
	return &APIError{
		Message:    msg,
		StatusCode: status,
		Body:       string(body),
		Headers:    headers,
		Err:        cause,
		kind:       kind,
	}
}

func (e *APIError) Error() string {
	msg := "hyperion: " + e.Message
	if reason := e.Reason(); reason != "" {
		msg += ": " + reason
	}
	return msg
}

func (e *APIError) Unwrap() error { return e.Err }

// Is matches ErrUnexpectedStatus or ErrNullResponse depending on how the error was raised.
func (e *APIError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

const maxReasonLen = 256

// Reason extracts a short human readable explanation from the raw body.
func (e *APIError) Reason() string {
	body := bytes.TrimSpace([]byte(e.Body))
	if len(body) == 0 {
		if e.Err != nil {
			return e.Err.Error()
		}
		return ""
	}
	if reason := jsonReason(body); reason != "" {
		return truncate(reason)
	}
	if looksLikeHTML(e.Headers, body) {
		if reason := htmlReason(body); reason != "" {
			return truncate(reason)
		}
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return truncate(string(body))
}

// errorBody covers the fastify and nodeos error envelopes.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func jsonReason(body []byte) string {
	if body[0] != '{' {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	if len(eb.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(eb.Error, &s); err == nil {
		return s
	}
	var nested struct {
		What string `json:"what"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(eb.Error, &nested); err == nil {
		if nested.What != "" {
			return nested.What
		}
		return nested.Name
	}
	return ""
}

func looksLikeHTML(headers http.Header, body []byte) bool {
	if strings.Contains(strings.ToLower(headers.Get("Content-Type")), "text/html") {
		return true
	}
	return body[0] == '<'
}

func htmlReason(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

func truncate(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > maxReasonLen {
		cut := maxReasonLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		return s[:cut] + "..."
	}
	return s
}
