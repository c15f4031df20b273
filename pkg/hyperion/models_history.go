package hyperion

import "encoding/json"

type GetActionsResponse struct {
	QueryTimeMS float64  `json:"query_time_ms"`
	Cached      bool     `json:"cached"`
	LIB         int64    `json:"lib"`
	Total       Total    `json:"total"`
	Actions     []Action `json:"actions"`
}

type GetTransactionResponse struct {
	QueryTimeMS float64  `json:"query_time_ms"`
	Executed    bool     `json:"executed"`
	TrxID       string   `json:"trx_id"`
	LIB         int64    `json:"lib"`
	CachedLIB   bool     `json:"cached_lib"`
	Actions     []Action `json:"actions"`
}

type Delta struct {
	Timestamp  string          `json:"@timestamp"`
	Code       string          `json:"code"`
	Scope      string          `json:"scope"`
	Table      string          `json:"table"`
	PrimaryKey string          `json:"primary_key"`
	Payer      string          `json:"payer"`
	Present    Flag            `json:"present"`
	BlockNum   int64           `json:"block_num"`
	BlockID    string          `json:"block_id"`
	Data       json.RawMessage `json:"data"`
}

type GetDeltasResponse struct {
	QueryTimeMS float64 `json:"query_time_ms"`
	Total       Total   `json:"total"`
	Deltas      []Delta `json:"deltas"`
}

type GetABISnapshotResponse struct {
	QueryTimeMS float64         `json:"query_time_ms"`
	BlockNum    int64           `json:"block_num"`
	Present     bool            `json:"present"`
	ABI         json.RawMessage `json:"abi"`
}

type ScheduleProducer struct {
	Name string   `json:"name"`
	Keys []string `json:"keys"`
}

type GetScheduleResponse struct {
	QueryTimeMS float64            `json:"query_time_ms"`
	Timestamp   string             `json:"timestamp"`
	BlockNum    int64              `json:"block_num"`
	Version     int64              `json:"version"`
	Producers   []ScheduleProducer `json:"producers"`
}

type Voter struct {
	Account  string      `json:"account"`
	Weight   json.Number `json:"weight"`
	LastVote int64       `json:"last_vote"`
}

type GetVotersResponse struct {
	QueryTimeMS float64 `json:"query_time_ms"`
	Cached      bool    `json:"cached"`
	Total       Total   `json:"total"`
	Voters      []Voter `json:"voters"`
}

type Approval struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
	Time       string `json:"time"`
}

type Proposal struct {
	ProposalName       string     `json:"proposal_name"`
	Proposer           string     `json:"proposer"`
	Expiration         string     `json:"expiration"`
	Executed           bool       `json:"executed"`
	BlockNum           int64      `json:"block_num"`
	PrimaryKey         string     `json:"primary_key"`
	RequestedApprovals []Approval `json:"requested_approvals"`
	ProvidedApprovals  []Approval `json:"provided_approvals"`
}

type GetProposalsResponse struct {
	QueryTimeMS float64    `json:"query_time_ms"`
	Cached      bool       `json:"cached"`
	Total       Total      `json:"total"`
	Proposals   []Proposal `json:"proposals"`
}
