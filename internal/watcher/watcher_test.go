package watcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/samvad-hq/hyperion-client/pkg/hyperion"
	"github.com/samvad-hq/hyperion-client/pkg/publishers"
	"github.com/samvad-hq/hyperion-client/pkg/queries"
	"golang.org/x/time/rate"
)

// fakeCaller returns preset payloads per endpoint.
type fakeCaller struct {
	mu       sync.Mutex
	payloads map[string]string
	err      error
	calls    []string
}

func (f *fakeCaller) Call(_ context.Context, name string, _ hyperion.Args) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.payloads[name]), nil
}

// fakePublisher records published events and can inject errors.
type fakePublisher struct {
	mu      sync.Mutex
	events  []publishers.Event
	errOnID string
}

func (f *fakePublisher) Publish(_ context.Context, evt publishers.Event) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	if evt.QueryID == f.errOnID {
		return 0, errors.New("boom")
	}
	return 1, nil
}

// fakeDeduper tracks digests per query.
type fakeDeduper struct {
	mu      sync.Mutex
	digests map[string]string
	failErr error
	markErr error
}

func (f *fakeDeduper) SeenDigest(queryID, digest string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return false, f.failErr
	}
	return f.digests[queryID] == digest, nil
}

func (f *fakeDeduper) MarkDigest(queryID, digest string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	if f.digests == nil {
		f.digests = make(map[string]string)
	}
	f.digests[queryID] = digest
	return nil
}

type fakeRecorder struct {
	published, unchanged, failed int
}

func (r *fakeRecorder) SnapshotPublished(string) { r.published++ }
func (r *fakeRecorder) SnapshotUnchanged(string) { r.unchanged++ }
func (r *fakeRecorder) QueryFailed(string)       { r.failed++ }

func TestProcessPublishesChangedSnapshotsOnly(t *testing.T) {
	caller := &fakeCaller{payloads: map[string]string{
		"get_creator": `{"query_time_ms": 4.1, "account": "alice", "creator": "eosio"}`,
	}}
	pub := &fakePublisher{}
	dedupe := &fakeDeduper{}
	rec := &fakeRecorder{}
	svc := NewService(caller, pub, nil, dedupe, WithRecorder(rec))
	q := queries.Query{ID: "creator", Name: "alice creator", Endpoint: "get_creator", Params: map[string]any{"account": "alice"}}

	published, err := svc.Process(context.Background(), q)
	if err != nil || !published {
		t.Fatalf("first poll should publish, published=%v err=%v", published, err)
	}

	// Only the volatile timing field differs.
	caller.payloads["get_creator"] = `{"account":"alice","creator":"eosio","query_time_ms":9.7}`
	published, err = svc.Process(context.Background(), q)
	if err != nil || published {
		t.Fatalf("second poll should be unchanged, published=%v err=%v", published, err)
	}

	caller.payloads["get_creator"] = `{"account":"alice","creator":"bob"}`
	if published, _ = svc.Process(context.Background(), q); !published {
		t.Fatalf("changed payload should publish")
	}

	if len(pub.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(pub.events))
	}
	evt := pub.events[0]
	if evt.QueryName != "alice creator" || evt.Snapshot.Endpoint != "get_creator" || evt.ID == "" {
		t.Fatalf("unexpected event %+v", evt)
	}
	if string(evt.Snapshot.Payload) != `{"query_time_ms":4.1,"account":"alice","creator":"eosio"}` {
		t.Fatalf("payload should be compacted verbatim, got %s", evt.Snapshot.Payload)
	}
	if rec.published != 2 || rec.unchanged != 1 {
		t.Fatalf("unexpected recorder counts %+v", rec)
	}
}

func TestProcessDoesNotMarkWhenNoPublisherSucceeded(t *testing.T) {
	caller := &fakeCaller{payloads: map[string]string{"get_info": `{"head_block_num":1}`}}
	pub := &fakePublisher{errOnID: "info"}
	dedupe := &fakeDeduper{}
	svc := NewService(caller, pub, nil, dedupe)

	_, err := svc.Process(context.Background(), queries.Query{ID: "info", Endpoint: "get_info"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected publish error, got %v", err)
	}
	if len(dedupe.digests) != 0 {
		t.Fatalf("digest must not be marked after a failed publish")
	}
}

func TestProcessPublishesWhenStoreLookupFails(t *testing.T) {
	caller := &fakeCaller{payloads: map[string]string{"health": `{"health":[]}`}}
	pub := &fakePublisher{}
	svc := NewService(caller, pub, nil, &fakeDeduper{failErr: errors.New("disk")})

	published, err := svc.Process(context.Background(), queries.Query{ID: "h", Endpoint: "health"})
	if err != nil || !published {
		t.Fatalf("lookup failure should still publish, published=%v err=%v", published, err)
	}
}

func TestProcessCountsPublishWhenDigestMarkFails(t *testing.T) {
	caller := &fakeCaller{payloads: map[string]string{"get_info": `{"head_block_num":7}`}}
	pub := &fakePublisher{}
	rec := &fakeRecorder{}
	svc := NewService(caller, pub, nil, &fakeDeduper{markErr: errors.New("read-only db")}, WithRecorder(rec))

	err := svc.Run(context.Background(), []queries.Query{{ID: "info", Endpoint: "get_info"}})
	if err != nil {
		t.Fatalf("Run = %v, want nil once the event was delivered", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(pub.events))
	}
	if rec.published != 1 || rec.failed != 0 {
		t.Fatalf("unexpected recorder counts %+v", rec)
	}
}

func TestRunAggregatesQueryErrors(t *testing.T) {
	caller := &fakeCaller{err: errors.New("node down")}
	rec := &fakeRecorder{}
	svc := NewService(caller, &fakePublisher{}, nil, &fakeDeduper{}, WithRecorder(rec))

	err := svc.Run(context.Background(), []queries.Query{
		{ID: "a", Endpoint: "get_info"},
		{ID: "b", Endpoint: "health"},
	})
	if err == nil || !strings.Contains(err.Error(), "query a") || !strings.Contains(err.Error(), "query b") {
		t.Fatalf("expected both query errors, got %v", err)
	}
	if rec.failed != 2 {
		t.Fatalf("expected 2 failures recorded, got %d", rec.failed)
	}
}

func TestRunAllStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	caller := &fakeCaller{}
	svc := NewService(caller, &fakePublisher{}, nil, nil, WithLimiter(rate.NewLimiter(rate.Limit(1), 1)))
	errs := svc.runAll(ctx, []queries.Query{{ID: "a", Endpoint: "get_info"}})
	if len(errs) != 0 {
		t.Fatalf("expected no errors on cancelled context, got %v", errs)
	}
	if len(caller.calls) != 0 {
		t.Fatalf("no calls expected after cancellation")
	}
}

func TestRunRejectsEmptyQueries(t *testing.T) {
	svc := NewService(&fakeCaller{}, &fakePublisher{}, nil, nil)
	if err := svc.Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error when queries list empty")
	}
}

func TestServiceAgainstHyperionClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/state/get_voters" || r.URL.RawQuery != "producer=eosriobrazil&limit=2" {
			http.Error(w, `{"message":"bad query"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query_time_ms":1,"voters":[{"account":"alice"}]}`))
	}))
	defer srv.Close()

	client := hyperion.New(hyperion.WithBaseURL(srv.URL))
	pub := &fakePublisher{}
	svc := NewService(client, pub, nil, &fakeDeduper{})

	err := svc.Run(context.Background(), []queries.Query{{
		ID: "voters", Endpoint: "get_voters", Params: map[string]any{"producer": "eosriobrazil", "limit": 2},
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(pub.events) != 1 || pub.events[0].Snapshot.Digest == "" {
		t.Fatalf("expected one published snapshot, got %+v", pub.events)
	}
}

func TestDigestIgnoresKeyOrderAndVolatileFields(t *testing.T) {
	a, _, err := Digest(json.RawMessage(`{"b":1,"a":{"y":2,"x":1},"cached":true}`))
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	b, _, _ := Digest(json.RawMessage(`{"a":{"x":1,"y":2},"b":1}`))
	if a != b {
		t.Fatalf("digests differ: %s vs %s", a, b)
	}
	if _, _, err := Digest(json.RawMessage(`{"a":`)); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
