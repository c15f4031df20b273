package hyperion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

const mediaTypeJSON = "application/json"

// Request is a fully formed HTTP request ready for the transport.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// BuildRequest validates args against ep and renders the request. It never
// performs I/O; every argument problem is reported as *ArgumentError.
func BuildRequest(baseURL string, ep *Endpoint, args Args) (*Request, error) {
	if ep == nil {
		return nil, fmt.Errorf("hyperion: nil endpoint")
	}
	if err := checkUnknown(ep, args); err != nil {
		return nil, err
	}

	var (
		queryParts []string
		bodyBuf    bytes.Buffer
		bodyFields int
	)
	for _, p := range ep.Params {
		v, present, err := coerce(p.Kind, args[p.Name])
		if err != nil {
			return nil, &ArgumentError{Endpoint: ep.Name, Param: p.Name, Err: ErrInvalidParameter, Detail: err.Error()}
		}
		if s, isString := v.(string); present && p.Required && isString && s == "" {
			present = false
		}
		if !present {
			if p.Required {
				return nil, &ArgumentError{Endpoint: ep.Name, Param: p.Name, Err: ErrMissingParameter}
			}
			continue
		}

		switch p.In {
		case InBody:
			if err := writeBodyField(&bodyBuf, bodyFields, p.Name, v); err != nil {
				return nil, &ArgumentError{Endpoint: ep.Name, Param: p.Name, Err: ErrInvalidParameter, Detail: err.Error()}
			}
			bodyFields++
		default:
			queryParts = append(queryParts, escapeData(p.Name)+"="+escapeData(formatValue(v)))
		}
	}

	u := strings.TrimRight(baseURL, "/") + ep.Path
	if len(queryParts) > 0 {
		u += "?" + strings.Join(queryParts, "&")
	}

	req := &Request{
		Method: ep.Method,
		URL:    u,
		Header: http.Header{},
	}
	if ep.hasBody() {
		var payload bytes.Buffer
		payload.WriteByte('{')
		payload.Write(bodyBuf.Bytes())
		payload.WriteByte('}')
		req.Body = payload.Bytes()
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	if ep.AcceptJSON {
		req.Header.Set("Accept", mediaTypeJSON)
	}
	return req, nil
}

// ValidateArgs reports the first argument problem BuildRequest would hit.
func ValidateArgs(ep Endpoint, args Args) error {
	_, err := BuildRequest("", &ep, args)
	return err
}

func checkUnknown(ep *Endpoint, args Args) error {
	var unknown []string
	for name := range args {
		if _, ok := ep.Param(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &ArgumentError{Endpoint: ep.Name, Param: unknown[0], Err: ErrUnknownParameter}
}

func writeBodyField(buf *bytes.Buffer, idx int, name string, v any) error {
	key, err := json.Marshal(name)
	if err != nil {
		return err
	}
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if idx > 0 {
		buf.WriteByte(',')
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

// escapeData percent-encodes s as RFC 3986 data: spaces become %20, not '+'.
func escapeData(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
