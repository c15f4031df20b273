package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T, opts Options) *boltStore {
	t.Helper()
	storeRaw, err := openBolt(t.TempDir()+"/snapshots.db", normalizeOptions(opts))
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltStoreTracksLatestDigestPerQuery(t *testing.T) {
	store := openTestStore(t, Options{SnapshotTTL: time.Hour, CleanupInterval: time.Hour})

	seen, err := store.SeenDigest("q1", "aaa")
	if err != nil || seen {
		t.Fatalf("expected unseen digest, seen=%v err=%v", seen, err)
	}

	if err := store.MarkDigest("q1", "aaa"); err != nil {
		t.Fatalf("MarkDigest: %v", err)
	}
	if seen, err := store.SeenDigest("q1", "aaa"); err != nil || !seen {
		t.Fatalf("expected digest seen, got seen=%v err=%v", seen, err)
	}
	if seen, _ := store.SeenDigest("q1", "bbb"); seen {
		t.Fatalf("a different digest must count as changed")
	}
	if seen, _ := store.SeenDigest("q2", "aaa"); seen {
		t.Fatalf("digests are scoped per query")
	}

	if err := store.MarkDigest("q1", "bbb"); err != nil {
		t.Fatalf("MarkDigest: %v", err)
	}
	if seen, _ := store.SeenDigest("q1", "aaa"); seen {
		t.Fatalf("older digest should be replaced")
	}
}

func TestBoltStoreExpiresDigests(t *testing.T) {
	store := openTestStore(t, Options{SnapshotTTL: time.Minute, CleanupInterval: time.Minute})
	clock := time.Now()
	store.now = func() time.Time { return clock }

	if err := store.MarkDigest("q1", "aaa"); err != nil {
		t.Fatalf("MarkDigest: %v", err)
	}

	clock = clock.Add(2 * time.Minute)
	seen, err := store.SeenDigest("q1", "aaa")
	if err != nil {
		t.Fatalf("SeenDigest after expiry: %v", err)
	}
	if seen {
		t.Fatalf("expected entry to expire and be removed")
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.MarkDigest("q", "x"); err != nil {
		t.Fatalf("noop store MarkDigest: %v", err)
	}
	if seen, _ := store.SeenDigest("q", "x"); seen {
		t.Fatalf("noop store must never report seen")
	}
}

func TestNewStoreRejectsUnknownBackend(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
	if _, err := NewStore("bbolt", " ", Options{}); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
