package hyperion

type GetInfoResponse struct {
	ServerVersion            string `json:"server_version"`
	ChainID                  string `json:"chain_id"`
	HeadBlockNum             int64  `json:"head_block_num"`
	LastIrreversibleBlockNum int64  `json:"last_irreversible_block_num"`
	LastIrreversibleBlockID  string `json:"last_irreversible_block_id"`
	HeadBlockID              string `json:"head_block_id"`
	HeadBlockTime            string `json:"head_block_time"`
	HeadBlockProducer        string `json:"head_block_producer"`
	VirtualBlockCPULimit     int64  `json:"virtual_block_cpu_limit"`
	VirtualBlockNetLimit     int64  `json:"virtual_block_net_limit"`
	BlockCPULimit            int64  `json:"block_cpu_limit"`
	BlockNetLimit            int64  `json:"block_net_limit"`
	ServerVersionString      string `json:"server_version_string"`
	ForkDBHeadBlockNum       int64  `json:"fork_db_head_block_num"`
	ForkDBHeadBlockID        string `json:"fork_db_head_block_id"`
}

type TableByScopeRow struct {
	Code  string `json:"code"`
	Scope string `json:"scope"`
	Table string `json:"table"`
	Payer string `json:"payer"`
	Count int64  `json:"count"`
}

// GetTableByScopeResponse pages through scopes; More holds the next lower bound.
type GetTableByScopeResponse struct {
	Rows []TableByScopeRow `json:"rows"`
	More string            `json:"more"`
}
