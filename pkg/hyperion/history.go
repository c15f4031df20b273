package hyperion

import "context"

type HistoryService struct {
	c *Client
}

// GetActionsParams mirrors the get_actions filters. Filter takes
// "contract:action" patterns; Sort is "asc" or "desc".
type GetActionsParams struct {
	Account  *string
	Filter   *string
	Track    *string
	Skip     *int
	Limit    *int
	Sort     *string
	After    *string
	Before   *string
	Simple   *bool
	NoBinary *bool
	CheckLib *bool
}

func (s *HistoryService) GetActions(ctx context.Context, p GetActionsParams) (*GetActionsResponse, error) {
	return execute[GetActionsResponse](ctx, s.c, epGetActions, Args{
		"account": p.Account, "filter": p.Filter, "track": p.Track, "skip": p.Skip, "limit": p.Limit,
		"sort": p.Sort, "after": p.After, "before": p.Before, "simple": p.Simple,
		"noBinary": p.NoBinary, "checkLib": p.CheckLib,
	})
}

func (s *HistoryService) GetTransaction(ctx context.Context, id string) (*GetTransactionResponse, error) {
	return execute[GetTransactionResponse](ctx, s.c, epGetTransaction, Args{"id": id})
}

type GetDeltasParams struct {
	Code  *string
	Scope *string
	Table *string
	Payer *string
}

func (s *HistoryService) GetDeltas(ctx context.Context, p GetDeltasParams) (*GetDeltasResponse, error) {
	return execute[GetDeltasResponse](ctx, s.c, epGetDeltas, Args{
		"code": p.Code, "scope": p.Scope, "table": p.Table, "payer": p.Payer,
	})
}

type GetABISnapshotParams struct {
	Contract string
	Block    *int
	Fetch    *bool
}

func (s *HistoryService) GetABISnapshot(ctx context.Context, p GetABISnapshotParams) (*GetABISnapshotResponse, error) {
	return execute[GetABISnapshotResponse](ctx, s.c, epGetABISnapshot, Args{
		"contract": p.Contract, "block": p.Block, "fetch": p.Fetch,
	})
}

type GetScheduleParams struct {
	Producer *string
	Key      *string
	After    *string
	Before   *string
	Version  *int
}

func (s *HistoryService) GetSchedule(ctx context.Context, p GetScheduleParams) (*GetScheduleResponse, error) {
	return execute[GetScheduleResponse](ctx, s.c, epGetSchedule, Args{
		"producer": p.Producer, "key": p.Key, "after": p.After, "before": p.Before, "version": p.Version,
	})
}
