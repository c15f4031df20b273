package hyperion

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestInterpretDecodesSuccessBody(t *testing.T) {
	resp := &Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       []byte(`{"account":"eosrio","creator":"eosio","block_num":42,"trx_id":"abc"}`),
	}
	out, err := interpret[GetCreatorResponse](epGetCreator, resp)
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if out.Account != "eosrio" || out.Creator != "eosio" || out.BlockNum != 42 || out.TrxID != "abc" {
		t.Fatalf("unexpected decode %+v", out)
	}
}

func TestInterpretNullOrEmptyBodyIsNullResponse(t *testing.T) {
	for _, body := range []string{"", "  ", "null", " null\n"} {
		resp := &Response{StatusCode: http.StatusOK, Header: http.Header{"X-Node": {"a"}}, Body: []byte(body)}
		_, err := interpret[GetCreatorResponse](epGetCreator, resp)
		var apiErr *APIError
		if !errors.As(err, &apiErr) || !errors.Is(err, ErrNullResponse) {
			t.Fatalf("body %q: expected null response error, got %v", body, err)
		}
		if apiErr.StatusCode != http.StatusOK || apiErr.Body != body || apiErr.Headers.Get("X-Node") != "a" {
			t.Fatalf("body %q: error lost diagnostics %+v", body, apiErr)
		}
	}
}

func TestInterpretUndecodableBodyKeepsCause(t *testing.T) {
	resp := &Response{StatusCode: http.StatusOK, Body: []byte(`{"account": 12`)}
	_, err := interpret[GetCreatorResponse](epGetCreator, resp)
	if !errors.Is(err, ErrNullResponse) {
		t.Fatalf("expected ErrNullResponse, got %v", err)
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected wrapped *json.SyntaxError, got %v", err)
	}
}

func TestInterpretUnexpectedStatus(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusNoContent, http.StatusNotFound, http.StatusInternalServerError} {
		resp := &Response{StatusCode: status, Body: []byte(`{"statusCode":404,"error":"Not Found","message":"account not found"}`)}
		_, err := interpret[GetCreatorResponse](epGetCreator, resp)
		var apiErr *APIError
		if !errors.As(err, &apiErr) || !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("status %d: expected unexpected status error, got %v", status, err)
		}
		if errors.Is(err, ErrNullResponse) {
			t.Fatalf("status %d: error must not match ErrNullResponse", status)
		}
		if apiErr.StatusCode != status || apiErr.Body != string(resp.Body) {
			t.Fatalf("status %d: error does not mirror response: %+v", status, apiErr)
		}
	}
}

func TestInterpretNoContentEndpoint(t *testing.T) {
	ep := &Endpoint{Name: "push", Method: http.MethodPost, Path: "/push", NoContent: true}
	out, err := interpret[struct{}](ep, &Response{StatusCode: http.StatusOK})
	if err != nil || out != nil {
		t.Fatalf("fire-and-forget success = %v, %v", out, err)
	}
	_, err = interpret[struct{}](ep, &Response{StatusCode: http.StatusBadGateway})
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestMergeHeadersTrailerWins(t *testing.T) {
	merged := mergeHeaders(
		http.Header{"Content-Type": {"application/json"}, "X-Cache": {"MISS"}},
		http.Header{"X-Cache": {"HIT"}},
	)
	if merged.Get("X-Cache") != "HIT" || merged.Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected merge %v", merged)
	}
}
