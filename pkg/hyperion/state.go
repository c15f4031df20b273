package hyperion

import "context"

// StateService covers voting and multisig state tables.
type StateService struct {
	c *Client
}

type GetVotersParams struct {
	Producer *string
	Proxy    *bool
	Skip     *int
	Limit    *int
}

func (s *StateService) GetVoters(ctx context.Context, p GetVotersParams) (*GetVotersResponse, error) {
	return execute[GetVotersResponse](ctx, s.c, epGetVoters, Args{
		"producer": p.Producer, "proxy": p.Proxy, "skip": p.Skip, "limit": p.Limit,
	})
}

type GetProposalsParams struct {
	Proposer  *string
	Proposal  *string
	Account   *string
	Requested *string
	Provided  *string
	Executed  *bool
	Track     *string
	Skip      *int
	Limit     *int
}

func (s *StateService) GetProposals(ctx context.Context, p GetProposalsParams) (*GetProposalsResponse, error) {
	return execute[GetProposalsResponse](ctx, s.c, epGetProposals, Args{
		"proposer": p.Proposer, "proposal": p.Proposal, "account": p.Account, "requested": p.Requested,
		"provided": p.Provided, "executed": p.Executed, "track": p.Track, "skip": p.Skip, "limit": p.Limit,
	})
}
