package storage

import (
	"fmt"
	"strings"
	"time"
)

// Store remembers the last published digest of each watched query.
type Store interface {
	Close() error
	// SeenDigest reports whether digest is the live, unexpired digest recorded for queryID.
	SeenDigest(queryID, digest string) (bool, error)
	MarkDigest(queryID, digest string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	SnapshotTTL     time.Duration
	CleanupInterval time.Duration
}

const (
	defaultSnapshotTTL     = 7 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.SnapshotTTL <= 0 {
		opts.SnapshotTTL = defaultSnapshotTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

// noopStore never remembers anything, so every poll publishes.
type noopStore struct{}

func (noopStore) Close() error                            { return nil }
func (noopStore) SeenDigest(string, string) (bool, error) { return false, nil }
func (noopStore) MarkDigest(string, string) error         { return nil }
