package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/samvad-hq/hyperion-client/internal/config"
	"github.com/samvad-hq/hyperion-client/pkg/publishers"
)

func TestWatcherPublishesToHTTPSink(t *testing.T) {
	hyperionSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query_time_ms":2,"account":"alice","creator":"eosio"}`))
	}))
	defer hyperionSrv.Close()

	var (
		mu     sync.Mutex
		events []publishers.Event
	)
	received := make(chan struct{}, 1)
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var evt publishers.Event
		if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
			t.Errorf("decode event: %v", err)
		}
		mu.Lock()
		events = append(events, evt)
		mu.Unlock()
		select {
		case received <- struct{}{}:
		default:
		}
	}))
	defer sink.Close()

	dir := t.TempDir()
	queriesFile := filepath.Join(dir, "queries.yaml")
	publishersFile := filepath.Join(dir, "publishers.yaml")
	writeTestFile(t, queriesFile, "queries:\n  - id: creator\n    endpoint: get_creator\n    params:\n      account: alice\n")
	writeTestFile(t, publishersFile, "publishers:\n  - id: sink\n    type: http\n    http:\n      url: "+sink.URL+"\n")

	cfg := &config.Config{
		HyperionBaseURL:        hyperionSrv.URL,
		HyperionTimeout:        5 * time.Second,
		QueriesFile:            queriesFile,
		PublishersFile:         publishersFile,
		PollInterval:           time.Hour,
		RateLimitRPS:           10,
		RateLimitBurst:         1,
		StorageType:            "bbolt",
		BBoltPath:              filepath.Join(dir, "data", "snapshots.db"),
		StorageTTL:             time.Hour,
		StorageCleanupInterval: time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := NewWatcher(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatalf("sink did not receive an event")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 || events[0].QueryID != "creator" || events[0].Snapshot.Endpoint != "get_creator" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestNewWatcherRequiresPublishers(t *testing.T) {
	dir := t.TempDir()
	queriesFile := filepath.Join(dir, "queries.yaml")
	publishersFile := filepath.Join(dir, "publishers.yaml")
	writeTestFile(t, queriesFile, "queries:\n  - id: info\n    endpoint: get_info\n")
	writeTestFile(t, publishersFile, "publishers:\n  - id: off\n    type: http\n    enabled: false\n    http:\n      url: https://example.com\n")

	_, err := NewWatcher(context.Background(), &config.Config{QueriesFile: queriesFile, PublishersFile: publishersFile}, nil)
	if err == nil {
		t.Fatalf("expected error without enabled publishers")
	}
}

func TestWatcherIdleWithoutQueriesStopsCleanly(t *testing.T) {
	dir := t.TempDir()
	queriesFile := filepath.Join(dir, "queries.yaml")
	publishersFile := filepath.Join(dir, "publishers.yaml")
	writeTestFile(t, queriesFile, "queries:\n  - id: info\n    endpoint: get_info\n    enabled: false\n")
	writeTestFile(t, publishersFile, "publishers:\n  - id: sink\n    type: http\n    http:\n      url: https://example.com\n")

	ctx, cancel := context.WithCancel(context.Background())
	w, err := NewWatcher(ctx, &config.Config{
		HyperionBaseURL: "https://hyperion.invalid",
		QueriesFile:     queriesFile,
		PublishersFile:  publishersFile,
		PollInterval:    time.Hour,
		RateLimitRPS:    1,
		RateLimitBurst:  1,
		StorageType:     "none",
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v, want nil after shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("idle watcher did not stop on cancel")
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
