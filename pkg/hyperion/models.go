package hyperion

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Total is the Elasticsearch hit count returned by paginated endpoints.
type Total struct {
	Value    int64  `json:"value"`
	Relation string `json:"relation"`
}

// Flag decodes booleans that some Hyperion versions encode as 0/1.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(bytes.TrimSpace(data), `"`)) {
	case "true", "1":
		*f = true
	case "false", "0", "", "null":
		*f = false
	default:
		return fmt.Errorf("hyperion: cannot decode %s as flag", data)
	}
	return nil
}

// PermissionLevel is an actor@permission pair.
type PermissionLevel struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// Act is the action payload inside an action trace.
type Act struct {
	Account       string            `json:"account"`
	Name          string            `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          json.RawMessage   `json:"data"`
}

// RAMDelta is a RAM usage change caused by an action.
type RAMDelta struct {
	Account string `json:"account"`
	Delta   int64  `json:"delta"`
}

// Action is one indexed action trace.
type Action struct {
	AtTimestamp          string          `json:"@timestamp"`
	Timestamp            string          `json:"timestamp"`
	BlockNum             int64           `json:"block_num"`
	BlockID              string          `json:"block_id,omitempty"`
	TrxID                string          `json:"trx_id"`
	Act                  Act             `json:"act"`
	Notified             []string        `json:"notified,omitempty"`
	CPUUsageUs           int64           `json:"cpu_usage_us,omitempty"`
	NetUsageWords        int64           `json:"net_usage_words,omitempty"`
	AccountRAMDeltas     []RAMDelta      `json:"account_ram_deltas,omitempty"`
	GlobalSequence       uint64          `json:"global_sequence"`
	Receiver             string          `json:"receiver,omitempty"`
	Producer             string          `json:"producer,omitempty"`
	ActionOrdinal        int64           `json:"action_ordinal,omitempty"`
	CreatorActionOrdinal int64           `json:"creator_action_ordinal,omitempty"`
	Signatures           []string        `json:"signatures,omitempty"`
	Receipts             json.RawMessage `json:"receipts,omitempty"`
}
