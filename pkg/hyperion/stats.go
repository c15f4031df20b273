package hyperion

import "context"

type StatsService struct {
	c *Client
}

type GetActionUsageParams struct {
	// Period is the analysis period, e.g. "1h" or "24h".
	Period       string
	EndDate      *string
	UniqueActors *bool
}

func (s *StatsService) GetActionUsage(ctx context.Context, p GetActionUsageParams) (*GetActionUsageResponse, error) {
	return execute[GetActionUsageResponse](ctx, s.c, epGetActionUsage, Args{
		"period": p.Period, "end_date": p.EndDate, "unique_actors": p.UniqueActors,
	})
}

type GetMissedBlocksParams struct {
	Producer *string
	// After and Before are ISO8601 dates.
	After     *string
	Before    *string
	MinBlocks *int
}

func (s *StatsService) GetMissedBlocks(ctx context.Context, p GetMissedBlocksParams) (*GetMissedBlocksResponse, error) {
	return execute[GetMissedBlocksResponse](ctx, s.c, epGetMissedBlocks, Args{
		"producer": p.Producer, "after": p.After, "before": p.Before, "min_blocks": p.MinBlocks,
	})
}

func (s *StatsService) GetResourceUsage(ctx context.Context, code, action string) (*GetResourceUsageResponse, error) {
	return execute[GetResourceUsageResponse](ctx, s.c, epGetResourceUsage, Args{"code": code, "action": action})
}
