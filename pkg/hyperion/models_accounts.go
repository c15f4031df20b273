package hyperion

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CreatedAccount struct {
	Name      string `json:"name"`
	TrxID     string `json:"trx_id"`
	Timestamp string `json:"timestamp"`
}

type GetCreatedAccountsResponse struct {
	QueryTimeMS float64          `json:"query_time_ms"`
	Accounts    []CreatedAccount `json:"accounts"`
}

type GetCreatorResponse struct {
	QueryTimeMS float64 `json:"query_time_ms"`
	Account     string  `json:"account"`
	Creator     string  `json:"creator"`
	Timestamp   string  `json:"timestamp"`
	BlockNum    int64   `json:"block_num"`
	TrxID       string  `json:"trx_id"`
}

type KeyWeight struct {
	Key    string `json:"key"`
	Weight int    `json:"weight"`
}

type PermissionLevelWeight struct {
	Permission PermissionLevel `json:"permission"`
	Weight     int             `json:"weight"`
}

type WaitWeight struct {
	WaitSec int64 `json:"wait_sec"`
	Weight  int   `json:"weight"`
}

type Authority struct {
	Threshold int                     `json:"threshold"`
	Keys      []KeyWeight             `json:"keys"`
	Accounts  []PermissionLevelWeight `json:"accounts"`
	Waits     []WaitWeight            `json:"waits"`
}

type Permission struct {
	PermName     string    `json:"perm_name"`
	Parent       string    `json:"parent"`
	RequiredAuth Authority `json:"required_auth"`
}

// ResourceLimit values are strings or numbers depending on the node version.
type ResourceLimit struct {
	Used      json.Number `json:"used"`
	Available json.Number `json:"available"`
	Max       json.Number `json:"max"`
}

// AccountInfo mirrors the nodeos get_account document embedded by Hyperion.
type AccountInfo struct {
	AccountName            string          `json:"account_name"`
	HeadBlockNum           int64           `json:"head_block_num"`
	HeadBlockTime          string          `json:"head_block_time"`
	Privileged             bool            `json:"privileged"`
	LastCodeUpdate         string          `json:"last_code_update"`
	Created                string          `json:"created"`
	CoreLiquidBalance      string          `json:"core_liquid_balance,omitempty"`
	RAMQuota               json.Number     `json:"ram_quota"`
	NetWeight              json.Number     `json:"net_weight"`
	CPUWeight              json.Number     `json:"cpu_weight"`
	NetLimit               ResourceLimit   `json:"net_limit"`
	CPULimit               ResourceLimit   `json:"cpu_limit"`
	RAMUsage               json.Number     `json:"ram_usage"`
	Permissions            []Permission    `json:"permissions"`
	TotalResources         json.RawMessage `json:"total_resources,omitempty"`
	SelfDelegatedBandwidth json.RawMessage `json:"self_delegated_bandwidth,omitempty"`
	RefundRequest          json.RawMessage `json:"refund_request,omitempty"`
	VoterInfo              json.RawMessage `json:"voter_info,omitempty"`
}

type Link struct {
	BlockNum   int64  `json:"block_num"`
	Timestamp  string `json:"timestamp"`
	Account    string `json:"account"`
	Permission string `json:"permission"`
	Code       string `json:"code"`
	Action     string `json:"action"`
}

// Token is a balance of one token contract.
type Token struct {
	Symbol    string          `json:"symbol"`
	Precision int             `json:"precision"`
	Amount    decimal.Decimal `json:"amount"`
	Contract  string          `json:"contract"`
}

type GetAccountResponse struct {
	QueryTimeMS  float64     `json:"query_time_ms"`
	Account      AccountInfo `json:"account"`
	Links        []Link      `json:"links"`
	Tokens       []Token     `json:"tokens"`
	TotalActions int64       `json:"total_actions"`
	Actions      []Action    `json:"actions"`
}

type KeyPermission struct {
	Owner       string          `json:"owner"`
	BlockNum    int64           `json:"block_num"`
	Parent      string          `json:"parent"`
	LastUpdated string          `json:"last_updated"`
	Auth        json.RawMessage `json:"auth"`
	Name        string          `json:"name"`
	Present     Flag            `json:"present"`
}

// GetKeyAccountsResponse carries permission details only when requested with details=true.
type GetKeyAccountsResponse struct {
	AccountNames []string        `json:"account_names"`
	Permissions  []KeyPermission `json:"permissions,omitempty"`
}

type GetLinksResponse struct {
	QueryTimeMS float64 `json:"query_time_ms"`
	Cached      bool    `json:"cached"`
	LIB         int64   `json:"lib"`
	Total       Total   `json:"total"`
	Links       []Link  `json:"links"`
}

// GetTokensResponse is provisional: the live API has not been checked against it.
type GetTokensResponse struct {
	QueryTimeMS float64 `json:"query_time_ms"`
	Cached      bool    `json:"cached"`
	Account     string  `json:"account"`
	Tokens      []Token `json:"tokens"`
}

type GetControlledAccountsResponse struct {
	ControlledAccounts []string `json:"controlled_accounts"`
}
