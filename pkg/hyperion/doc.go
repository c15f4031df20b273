// Package hyperion is a client for the Hyperion history and state API.
//
// Every endpoint is described by an Endpoint value in a single table. A call
// builds the request from the endpoint's ordered parameter list, sends it as a
// single attempt and interprets the response: the declared success status
// yields the decoded model, anything else yields an *APIError carrying the
// status, headers and raw body.
//
//	c := hyperion.New(hyperion.WithBaseURL("https://wax.eosrio.io"))
//	acct, err := c.Accounts.GetAccount(ctx, hyperion.GetAccountParams{
//		Account: "eosrio",
//		Limit:   hyperion.Int(10),
//	})
package hyperion
