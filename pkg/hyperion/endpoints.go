package hyperion

import (
	"net/http"
	"sort"
)

const (
	GroupHistory = "history"
	GroupState   = "state"
	GroupStats   = "stats"
	GroupStatus  = "status"
	GroupChain   = "chain"
)

var (
	epGetCreatedAccounts = &Endpoint{
		Name: "get_created_accounts", Group: GroupHistory, Summary: "get created accounts",
		Method: http.MethodGet, Path: "/v2/history/get_created_accounts",
		Params:     []Param{reqQuery("account", KindString), query("limit", KindInt), query("skip", KindInt)},
		AcceptJSON: true,
	}
	epGetCreator = &Endpoint{
		Name: "get_creator", Group: GroupHistory, Summary: "get account creator",
		Method: http.MethodGet, Path: "/v2/history/get_creator",
		Params:     []Param{reqQuery("account", KindString)},
		AcceptJSON: true,
	}
	epGetAccount = &Endpoint{
		Name: "get_account", Group: GroupState, Summary: "get account summary",
		Method: http.MethodGet, Path: "/v2/state/get_account",
		Params:     []Param{reqQuery("account", KindString), query("limit", KindInt), query("skip", KindInt)},
		AcceptJSON: true,
	}
	epGetKeyAccounts = &Endpoint{
		Name: "get_key_accounts", Group: GroupState, Summary: "get accounts by public key",
		Method: http.MethodGet, Path: "/v2/state/get_key_accounts",
		Params: []Param{
			reqQuery("public_key", KindString), query("limit", KindInt), query("skip", KindInt), query("details", KindBool),
		},
		AcceptJSON: true,
	}
	epGetLinks = &Endpoint{
		Name: "get_links", Group: GroupState, Summary: "get permission links",
		Method: http.MethodGet, Path: "/v2/state/get_links",
		Params: []Param{
			query("account", KindString), query("code", KindString), query("action", KindString), query("permission", KindString),
		},
		AcceptJSON: true,
	}
	// The response shape of get_tokens is provisional; see GetTokensResponse.
	epGetTokens = &Endpoint{
		Name: "get_tokens", Group: GroupState, Summary: "get all tokens",
		Method: http.MethodGet, Path: "/v2/state/get_tokens",
		Params: []Param{reqQuery("account", KindString), query("limit", KindInt), query("skip", KindInt)},
	}
	epGetControlledAccounts = &Endpoint{
		Name: "get_controlled_accounts", Group: GroupHistory, Summary: "get controlled accounts by controlling accounts",
		Method: http.MethodPost, Path: "/v1/history/get_controlled_accounts",
		Params:     []Param{reqBody("controlling_account", KindString)},
		AcceptJSON: true,
	}
	epGetActionUsage = &Endpoint{
		Name: "get_action_usage", Group: GroupStats, Summary: "get action and transaction stats for a given period",
		Method: http.MethodGet, Path: "/v2/stats/get_action_usage",
		Params: []Param{reqQuery("period", KindString), query("end_date", KindString), query("unique_actors", KindBool)},
	}
	epGetMissedBlocks = &Endpoint{
		Name: "get_missed_blocks", Group: GroupStats, Summary: "get missed blocks",
		Method: http.MethodGet, Path: "/v2/stats/get_missed_blocks",
		Params: []Param{
			query("producer", KindString), query("after", KindString), query("before", KindString), query("min_blocks", KindInt),
		},
		AcceptJSON: true,
	}
	epGetResourceUsage = &Endpoint{
		Name: "get_resource_usage", Group: GroupStats, Summary: "get resource usage stats for a specific action",
		Method: http.MethodGet, Path: "/v2/stats/get_resource_usage",
		Params: []Param{reqQuery("code", KindString), reqQuery("action", KindString)},
	}
	epHealth = &Endpoint{
		Name: "health", Group: GroupStatus, Summary: "API service health report",
		Method: http.MethodGet, Path: "/v2/health",
		AcceptJSON: true,
	}
	epGetActions = &Endpoint{
		Name: "get_actions", Group: GroupHistory, Summary: "get root actions",
		Method: http.MethodGet, Path: "/v2/history/get_actions",
		Params: []Param{
			query("account", KindString), query("filter", KindString), query("track", KindString),
			query("skip", KindInt), query("limit", KindInt), query("sort", KindString),
			query("after", KindString), query("before", KindString), query("simple", KindBool),
			query("noBinary", KindBool), query("checkLib", KindBool),
		},
		AcceptJSON: true,
	}
	epGetTransaction = &Endpoint{
		Name: "get_transaction", Group: GroupHistory, Summary: "get all actions belonging to the same transaction",
		Method: http.MethodGet, Path: "/v2/history/get_transaction",
		Params:     []Param{reqQuery("id", KindString)},
		AcceptJSON: true,
	}
	epGetDeltas = &Endpoint{
		Name: "get_deltas", Group: GroupHistory, Summary: "get state deltas",
		Method: http.MethodGet, Path: "/v2/history/get_deltas",
		Params: []Param{
			query("code", KindString), query("scope", KindString), query("table", KindString), query("payer", KindString),
		},
		AcceptJSON: true,
	}
	epGetABISnapshot = &Endpoint{
		Name: "get_abi_snapshot", Group: GroupHistory, Summary: "fetch contract abi at specific block",
		Method: http.MethodGet, Path: "/v2/history/get_abi_snapshot",
		Params:     []Param{reqQuery("contract", KindString), query("block", KindInt), query("fetch", KindBool)},
		AcceptJSON: true,
	}
	epGetSchedule = &Endpoint{
		Name: "get_schedule", Group: GroupHistory, Summary: "get producer schedule by version",
		Method: http.MethodGet, Path: "/v2/history/get_schedule",
		Params: []Param{
			query("producer", KindString), query("key", KindString), query("after", KindString),
			query("before", KindString), query("version", KindInt),
		},
		AcceptJSON: true,
	}
	epGetVoters = &Endpoint{
		Name: "get_voters", Group: GroupState, Summary: "get voters",
		Method: http.MethodGet, Path: "/v2/state/get_voters",
		Params: []Param{
			query("producer", KindString), query("proxy", KindBool), query("skip", KindInt), query("limit", KindInt),
		},
		AcceptJSON: true,
	}
	epGetProposals = &Endpoint{
		Name: "get_proposals", Group: GroupState, Summary: "get proposals",
		Method: http.MethodGet, Path: "/v2/state/get_proposals",
		Params: []Param{
			query("proposer", KindString), query("proposal", KindString), query("account", KindString),
			query("requested", KindString), query("provided", KindString), query("executed", KindBool),
			query("track", KindString), query("skip", KindInt), query("limit", KindInt),
		},
		AcceptJSON: true,
	}
	epGetInfo = &Endpoint{
		Name: "get_info", Group: GroupChain, Summary: "get chain information",
		Method: http.MethodGet, Path: "/v1/chain/get_info",
		AcceptJSON: true,
	}
	epGetTableByScope = &Endpoint{
		Name: "get_table_by_scope", Group: GroupChain, Summary: "get tables and scopes of a contract",
		Method: http.MethodPost, Path: "/v1/chain/get_table_by_scope",
		Params: []Param{
			reqBody("code", KindString), body("table", KindString), body("lower_bound", KindString),
			body("upper_bound", KindString), body("limit", KindInt), body("reverse", KindBool),
		},
		AcceptJSON: true,
	}
)

var endpointTable = []*Endpoint{
	epGetCreatedAccounts,
	epGetCreator,
	epGetAccount,
	epGetKeyAccounts,
	epGetLinks,
	epGetTokens,
	epGetControlledAccounts,
	epGetActionUsage,
	epGetMissedBlocks,
	epGetResourceUsage,
	epHealth,
	epGetActions,
	epGetTransaction,
	epGetDeltas,
	epGetABISnapshot,
	epGetSchedule,
	epGetVoters,
	epGetProposals,
	epGetInfo,
	epGetTableByScope,
}

var endpointIdx = func() map[string]*Endpoint {
	idx := make(map[string]*Endpoint, len(endpointTable))
	for _, ep := range endpointTable {
		idx[ep.Name] = ep
	}
	return idx
}()

// Endpoints returns copies of all known endpoints sorted by group and name.
func Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(endpointTable))
	for _, ep := range endpointTable {
		out = append(out, ep.clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// LookupEndpoint returns a copy of the endpoint registered under name.
func LookupEndpoint(name string) (Endpoint, bool) {
	ep, ok := endpointIdx[name]
	if !ok {
		return Endpoint{}, false
	}
	return ep.clone(), true
}

func (e *Endpoint) clone() Endpoint {
	cp := *e
	cp.Params = append([]Param(nil), e.Params...)
	return cp
}
