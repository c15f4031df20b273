package watcher

import (
	"context"
	"encoding/json"

	"github.com/samvad-hq/hyperion-client/pkg/hyperion"
	"github.com/samvad-hq/hyperion-client/pkg/publishers"
)

// Caller performs one raw Hyperion call by endpoint name.
type Caller interface {
	Call(ctx context.Context, name string, args hyperion.Args) (json.RawMessage, error)
}

// EventPublisher publishes snapshot events downstream and reports how many
// publishers accepted the event.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Deduper remembers the last published digest of each query.
type Deduper interface {
	SeenDigest(queryID, digest string) (bool, error)
	MarkDigest(queryID, digest string) error
}

// Limiter paces outgoing calls.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Recorder counts poll results.
type Recorder interface {
	SnapshotPublished(queryID string)
	SnapshotUnchanged(queryID string)
	QueryFailed(queryID string)
}
