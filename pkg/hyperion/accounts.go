package hyperion

import "context"

// AccountsService groups the account-centric history and state endpoints.
type AccountsService struct {
	c *Client
}

type GetCreatedAccountsParams struct {
	Account string // creator account
	Limit   *int
	Skip    *int
}

// GetCreatedAccounts lists accounts created by an account.
func (s *AccountsService) GetCreatedAccounts(ctx context.Context, p GetCreatedAccountsParams) (*GetCreatedAccountsResponse, error) {
	return execute[GetCreatedAccountsResponse](ctx, s.c, epGetCreatedAccounts, Args{
		"account": p.Account, "limit": p.Limit, "skip": p.Skip,
	})
}

// GetCreator returns the creator of an account.
func (s *AccountsService) GetCreator(ctx context.Context, account string) (*GetCreatorResponse, error) {
	return execute[GetCreatorResponse](ctx, s.c, epGetCreator, Args{"account": account})
}

type GetAccountParams struct {
	Account string
	Limit   *int
	Skip    *int
}

// GetAccount returns the account summary with links, tokens and recent actions.
func (s *AccountsService) GetAccount(ctx context.Context, p GetAccountParams) (*GetAccountResponse, error) {
	return execute[GetAccountResponse](ctx, s.c, epGetAccount, Args{
		"account": p.Account, "limit": p.Limit, "skip": p.Skip,
	})
}

type GetKeyAccountsParams struct {
	PublicKey string
	Limit     *int
	Skip      *int
	// Details includes permission details.
	Details *bool
}

// GetKeyAccounts returns accounts controlled by a public key.
func (s *AccountsService) GetKeyAccounts(ctx context.Context, p GetKeyAccountsParams) (*GetKeyAccountsResponse, error) {
	return execute[GetKeyAccountsResponse](ctx, s.c, epGetKeyAccounts, Args{
		"public_key": p.PublicKey, "limit": p.Limit, "skip": p.Skip, "details": p.Details,
	})
}

// GetLinksParams filters permission links; every field is optional.
type GetLinksParams struct {
	Account    *string
	Code       *string
	Action     *string
	Permission *string
}

func (s *AccountsService) GetLinks(ctx context.Context, p GetLinksParams) (*GetLinksResponse, error) {
	return execute[GetLinksResponse](ctx, s.c, epGetLinks, Args{
		"account": p.Account, "code": p.Code, "action": p.Action, "permission": p.Permission,
	})
}

type GetTokensParams struct {
	Account string
	Limit   *int
	Skip    *int
}

func (s *AccountsService) GetTokens(ctx context.Context, p GetTokensParams) (*GetTokensResponse, error) {
	return execute[GetTokensResponse](ctx, s.c, epGetTokens, Args{
		"account": p.Account, "limit": p.Limit, "skip": p.Skip,
	})
}

// GetControlledAccounts posts the controlling account as a JSON body.
func (s *AccountsService) GetControlledAccounts(ctx context.Context, controllingAccount string) (*GetControlledAccountsResponse, error) {
	return execute[GetControlledAccountsResponse](ctx, s.c, epGetControlledAccounts, Args{
		"controlling_account": controllingAccount,
	})
}
