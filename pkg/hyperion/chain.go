package hyperion

import "context"

// ChainService covers the nodeos chain endpoints proxied by Hyperion.
type ChainService struct {
	c *Client
}

func (s *ChainService) GetInfo(ctx context.Context) (*GetInfoResponse, error) {
	return execute[GetInfoResponse](ctx, s.c, epGetInfo, nil)
}

type GetTableByScopeParams struct {
	Code       string
	Table      *string
	LowerBound *string
	UpperBound *string
	Limit      *int
	Reverse    *bool
}

func (s *ChainService) GetTableByScope(ctx context.Context, p GetTableByScopeParams) (*GetTableByScopeResponse, error) {
	return execute[GetTableByScopeResponse](ctx, s.c, epGetTableByScope, Args{
		"code": p.Code, "table": p.Table, "lower_bound": p.LowerBound,
		"upper_bound": p.UpperBound, "limit": p.Limit, "reverse": p.Reverse,
	})
}
