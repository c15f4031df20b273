package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newHyperionStub(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v2/state/get_account":
			_, _ = w.Write([]byte(`{"account":{"account_name":"eosio"},"total_actions":1}`))
		case "/v2/history/get_actions":
			_, _ = w.Write([]byte(`{"total":{"value":0,"relation":"eq"},"actions":[]}`))
		case "/v2/health":
			_, _ = w.Write([]byte(`{"version":"3.3","health":[{"service":"Elasticsearch","status":"OK"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"statusCode":404,"error":"Not Found","message":"Route not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestAccountsGetPrintsDecodedJSON(t *testing.T) {
	srv, seen := newHyperionStub(t)
	code, out, errOut := run(t, "--base-url", srv.URL, "accounts", "get", "eosio", "--limit", "5")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, `"account_name": "eosio"`) {
		t.Fatalf("unexpected output %s", out)
	}
	if (*seen)[0] != "GET /v2/state/get_account?account=eosio&limit=5" {
		t.Fatalf("unexpected request %s", (*seen)[0])
	}
}

func TestCallParsesTypedAssignments(t *testing.T) {
	srv, seen := newHyperionStub(t)
	code, _, errOut := run(t, "--base-url", srv.URL, "call", "get_actions", "limit=10", "account=eosio", "simple=true")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if (*seen)[0] != "GET /v2/history/get_actions?account=eosio&limit=10&simple=true" {
		t.Fatalf("unexpected request %s", (*seen)[0])
	}
}

func TestCallRejectsBadArguments(t *testing.T) {
	srv, seen := newHyperionStub(t)
	cases := [][]string{
		{"call", "get_everything"},
		{"call", "get_actions", "limit"},
		{"call", "get_actions", "limit=ten"},
		{"call", "get_creator"},
	}
	for _, args := range cases {
		code, _, errOut := run(t, append([]string{"--base-url", srv.URL}, args...)...)
		if code == 0 || !strings.Contains(errOut, "error:") {
			t.Fatalf("%v: expected failure, got code=%d stderr=%q", args, code, errOut)
		}
	}
	if len(*seen) != 0 {
		t.Fatalf("invalid arguments must not reach the server: %v", *seen)
	}
}

func TestAPIErrorPrintsStatusAndReason(t *testing.T) {
	srv, _ := newHyperionStub(t)
	code, _, errOut := run(t, "--base-url", srv.URL, "accounts", "creator", "ghost")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "HTTP 404") || !strings.Contains(errOut, "Route not found") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestStatusHealthAndEndpoints(t *testing.T) {
	srv, _ := newHyperionStub(t)
	if code, out, errOut := run(t, "--base-url", srv.URL, "status", "health"); code != 0 || !strings.Contains(out, `"Elasticsearch"`) {
		t.Fatalf("health: code=%d out=%s err=%s", code, out, errOut)
	}
	code, out, _ := run(t, "endpoints")
	if code != 0 || !strings.Contains(out, "get_controlled_accounts") || !strings.Contains(out, "account*") {
		t.Fatalf("endpoints: code=%d out=%s", code, out)
	}
}
