package publishers

import (
	"time"

	"github.com/google/uuid"
	"github.com/samvad-hq/hyperion-client/internal/domain"
)

// Event represents the payload published downstream when a watched query changed.
type Event struct {
	ID          string          `json:"id"`
	QueryID     string          `json:"query_id"`
	QueryName   string          `json:"query_name"`
	Snapshot    domain.Snapshot `json:"snapshot"`
	PublishedAt time.Time       `json:"published_at"`
}

// NewEvent constructs an Event for the given query snapshot.
func NewEvent(queryName string, snap domain.Snapshot) Event {
	return Event{
		ID:          uuid.NewString(),
		QueryID:     snap.QueryID,
		QueryName:   queryName,
		Snapshot:    snap,
		PublishedAt: time.Now().UTC(),
	}
}

// Attributes are the routing attributes attached to queue and topic messages.
func (e Event) Attributes() map[string]string {
	return map[string]string{
		"event_id": e.ID,
		"query_id": e.QueryID,
		"endpoint": e.Snapshot.Endpoint,
	}
}
