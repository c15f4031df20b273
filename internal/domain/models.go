package domain

import (
	"encoding/json"
	"time"
)

// Snapshot is one observed response of a watched Hyperion query.
type Snapshot struct {
	QueryID   string          `json:"query_id"`
	Endpoint  string          `json:"endpoint"`
	Digest    string          `json:"digest"`
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetched_at"`
}
