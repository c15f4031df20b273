package hyperion

import "encoding/json"

type ServiceHealth struct {
	Service     string          `json:"service"`
	Status      string          `json:"status"`
	ServiceData json.RawMessage `json:"service_data,omitempty"`
	Time        int64           `json:"time"`
}

type StreamingFeatures struct {
	Enable bool `json:"enable"`
	Traces bool `json:"traces"`
	Deltas bool `json:"deltas"`
}

type TableFeatures struct {
	Proposals bool `json:"proposals"`
	Accounts  bool `json:"accounts"`
	Voters    bool `json:"voters"`
}

type Features struct {
	Streaming         StreamingFeatures `json:"streaming"`
	Tables            TableFeatures     `json:"tables"`
	IndexDeltas       bool              `json:"index_deltas"`
	IndexTransferMemo bool              `json:"index_transfer_memo"`
	IndexAllDeltas    bool              `json:"index_all_deltas"`
	DeferredTrx       bool              `json:"deferred_trx"`
	FailedTrx         bool              `json:"failed_trx"`
	ResourceLimits    bool              `json:"resource_limits"`
	ResourceUsage     bool              `json:"resource_usage"`
}

type HealthResponse struct {
	Version     string          `json:"version"`
	VersionHash string          `json:"version_hash"`
	Host        string          `json:"host"`
	Health      []ServiceHealth `json:"health"`
	Features    *Features       `json:"features"`
	QueryTimeMS float64         `json:"query_time_ms"`
}

// Healthy reports whether every service reported status OK.
func (h *HealthResponse) Healthy() bool {
	for _, s := range h.Health {
		if s.Status != "OK" {
			return false
		}
	}
	return len(h.Health) > 0
}
