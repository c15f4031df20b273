package hyperion

import "encoding/json"

// GetActionUsageResponse is provisional: the live API has not been checked against it.
type GetActionUsageResponse struct {
	QueryTimeMS  float64     `json:"query_time_ms"`
	ActionCount  json.Number `json:"action_count"`
	TxCount      json.Number `json:"tx_count"`
	UniqueActors json.Number `json:"unique_actors,omitempty"`
	Period       string      `json:"period"`
	From         string      `json:"from"`
	To           string      `json:"to"`
}

type MissedBlockStats struct {
	ByProducer map[string]int64 `json:"by_producer"`
}

type MissedBlockEvent struct {
	Timestamp       string `json:"@timestamp"`
	LastProducer    string `json:"last_producer"`
	NewProducer     string `json:"new_producer"`
	ScheduleVersion int64  `json:"schedule_version"`
	Size            int64  `json:"size"`
}

type GetMissedBlocksResponse struct {
	QueryTimeMS float64            `json:"query_time_ms"`
	Stats       MissedBlockStats   `json:"stats"`
	Events      []MissedBlockEvent `json:"events"`
}

// GetResourceUsageResponse is provisional; the usage breakdowns are kept raw.
type GetResourceUsageResponse struct {
	QueryTimeMS float64         `json:"query_time_ms"`
	Cached      bool            `json:"cached"`
	Hits        int64           `json:"hits"`
	CPU         json.RawMessage `json:"cpu,omitempty"`
	NET         json.RawMessage `json:"net,omitempty"`
}
