package publishers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/samvad-hq/hyperion-client/internal/domain"
)

func TestHTTPPublisherSuccess(t *testing.T) {
	var got Event
	var eventHeader, queryHeader, endpointHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if h := r.Header.Get("X-Test"); h != "1" {
			t.Errorf("missing header, got %s", h)
		}
		eventHeader = r.Header.Get("X-Event-Id")
		queryHeader = r.Header.Get("X-Query-Id")
		endpointHeader = r.Header.Get("X-Hyperion-Endpoint")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	pub, err := newHTTPPublisher(context.Background(), PublisherConfig{
		ID:   "hook",
		Type: TypeHTTP,
		HTTP: &HTTPPublisherConfig{
			URL:            srv.URL,
			Method:         http.MethodPost,
			Headers:        map[string]string{"X-Test": "1"},
			TimeoutSeconds: 2,
		},
	}, nil)
	if err != nil {
		t.Fatalf("newHTTPPublisher: %v", err)
	}

	evt := NewEvent("eosio creator", domain.Snapshot{
		QueryID:   "creator",
		Endpoint:  "get_creator",
		Digest:    "abc",
		Payload:   json.RawMessage(`{"creator":"eosio"}`),
		FetchedAt: time.Now().UTC(),
	})
	if err := pub.Publish(context.Background(), evt); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if got.ID != evt.ID || eventHeader != evt.ID {
		t.Fatalf("event id not propagated: body=%q header=%q want %q", got.ID, eventHeader, evt.ID)
	}
	if queryHeader != "creator" || endpointHeader != "get_creator" {
		t.Fatalf("routing headers = %q/%q", queryHeader, endpointHeader)
	}
	if got.Snapshot.Endpoint != "get_creator" || string(got.Snapshot.Payload) != `{"creator":"eosio"}` {
		t.Fatalf("unexpected snapshot %+v", got.Snapshot)
	}
}

func TestHTTPPublisherErrorOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	pub, err := newHTTPPublisher(context.Background(), PublisherConfig{
		ID:   "hook",
		Type: TypeHTTP,
		HTTP: &HTTPPublisherConfig{
			URL:            srv.URL,
			Method:         http.MethodPost,
			TimeoutSeconds: 1,
		},
	}, nil)
	if err != nil {
		t.Fatalf("newHTTPPublisher: %v", err)
	}

	if err := pub.Publish(context.Background(), Event{}); err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}

func TestWebhookSnippetCutsOnRuneBoundary(t *testing.T) {
	body := []byte(strings.Repeat("x", maxWebhookSnippet-1) + "ü tail")
	got := webhookSnippet(body)
	if !utf8.ValidString(got) {
		t.Fatalf("snippet is not valid UTF-8: %q", got[len(got)-4:])
	}
	if len(got) != maxWebhookSnippet-1 {
		t.Fatalf("len(snippet) = %d, want %d", len(got), maxWebhookSnippet-1)
	}
	if webhookSnippet(nil) != "" {
		t.Fatalf("empty body should give empty snippet")
	}
}
