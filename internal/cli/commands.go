package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/samvad-hq/hyperion-client/pkg/hyperion"
	"github.com/spf13/cobra"
)

func newEndpointsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the endpoints the client knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
			for _, ep := range hyperion.Endpoints() {
				params := make([]string, 0, len(ep.Params))
				for _, p := range ep.Params {
					name := p.Name
					if p.Required {
						name += "*"
					}
					params = append(params, name)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\n", ep.Group, color.CyanString(ep.Name), ep.Method, ep.Path, strings.Join(params, ","))
			}
			return tw.Flush()
		},
	}
}

func newCallCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "call <endpoint> [name=value...]",
		Short: "Call any endpoint by name and print the raw response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, ok := hyperion.LookupEndpoint(args[0])
			if !ok {
				return fmt.Errorf("unknown endpoint %q (see `hyperion endpoints`)", args[0])
			}
			callArgs, err := parseAssignments(ep, args[1:])
			if err != nil {
				return err
			}
			raw, err := rt.client.Call(cmd.Context(), ep.Name, callArgs)
			if err != nil {
				return err
			}
			return printJSON(rt.out, raw)
		},
	}
}

// optInt returns a pointer to the flag value only when the flag was set.
func optInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func optString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func optBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func addPaging(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "maximum number of results")
	cmd.Flags().Int("skip", 0, "number of results to skip")
}

func newAccountsCmd(rt *runtime) *cobra.Command {
	accounts := &cobra.Command{
		Use:   "accounts",
		Short: "Account history and state endpoints",
	}

	get := &cobra.Command{
		Use:   "get <account>",
		Short: "Account summary with links, tokens and recent actions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.client.Accounts.GetAccount(cmd.Context(), hyperion.GetAccountParams{
				Account: args[0], Limit: optInt(cmd, "limit"), Skip: optInt(cmd, "skip"),
			})
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}
	addPaging(get)

	created := &cobra.Command{
		Use:   "created <account>",
		Short: "Accounts created by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.client.Accounts.GetCreatedAccounts(cmd.Context(), hyperion.GetCreatedAccountsParams{
				Account: args[0], Limit: optInt(cmd, "limit"), Skip: optInt(cmd, "skip"),
			})
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}
	addPaging(created)

	creator := &cobra.Command{
		Use:   "creator <account>",
		Short: "Creator of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.client.Accounts.GetCreator(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}

	keys := &cobra.Command{
		Use:   "keys <public_key>",
		Short: "Accounts controlled by a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.client.Accounts.GetKeyAccounts(cmd.Context(), hyperion.GetKeyAccountsParams{
				PublicKey: args[0], Limit: optInt(cmd, "limit"), Skip: optInt(cmd, "skip"), Details: optBool(cmd, "details"),
			})
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}
	addPaging(keys)
	keys.Flags().Bool("details", false, "include permission details")

	links := &cobra.Command{
		Use:   "links",
		Short: "Permission links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := rt.client.Accounts.GetLinks(cmd.Context(), hyperion.GetLinksParams{
				Account:    optString(cmd, "account"),
				Code:       optString(cmd, "code"),
				Action:     optString(cmd, "action"),
				Permission: optString(cmd, "permission"),
			})
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}
	for _, name := range []string{"account", "code", "action", "permission"} {
		links.Flags().String(name, "", "filter by "+name)
	}

	tokens := &cobra.Command{
		Use:   "tokens <account>",
		Short: "Token balances of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.client.Accounts.GetTokens(cmd.Context(), hyperion.GetTokensParams{
				Account: args[0], Limit: optInt(cmd, "limit"), Skip: optInt(cmd, "skip"),
			})
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}
	addPaging(tokens)

	controlled := &cobra.Command{
		Use:   "controlled <controlling_account>",
		Short: "Accounts controlled by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.client.Accounts.GetControlledAccounts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}

	accounts.AddCommand(get, created, creator, keys, links, tokens, controlled)
	return accounts
}

func newStatsCmd(rt *runtime) *cobra.Command {
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Usage and producer statistics",
	}

	actions := &cobra.Command{
		Use:   "actions <period>",
		Short: "Action usage over a period (e.g. 1h, 24h)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.client.Stats.GetActionUsage(cmd.Context(), hyperion.GetActionUsageParams{
				Period:       args[0],
				EndDate:      optString(cmd, "end-date"),
				UniqueActors: optBool(cmd, "unique-actors"),
			})
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}
	actions.Flags().String("end-date", "", "end of the period (ISO8601)")
	actions.Flags().Bool("unique-actors", false, "count unique actors")

	missed := &cobra.Command{
		Use:   "missed",
		Short: "Missed blocks by producer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := rt.client.Stats.GetMissedBlocks(cmd.Context(), hyperion.GetMissedBlocksParams{
				Producer:  optString(cmd, "producer"),
				After:     optString(cmd, "after"),
				Before:    optString(cmd, "before"),
				MinBlocks: optInt(cmd, "min-blocks"),
			})
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}
	missed.Flags().String("producer", "", "producer account")
	missed.Flags().String("after", "", "only events after this date")
	missed.Flags().String("before", "", "only events before this date")
	missed.Flags().Int("min-blocks", 0, "minimum missed blocks per event")

	resources := &cobra.Command{
		Use:   "resources <code> <action>",
		Short: "Resource usage of a contract action",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.client.Stats.GetResourceUsage(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(rt.out, res)
		},
	}

	stats.AddCommand(actions, missed, resources)
	return stats
}

func newStatusCmd(rt *runtime) *cobra.Command {
	status := &cobra.Command{
		Use:   "status",
		Short: "Service status endpoints",
	}
	health := &cobra.Command{
		Use:   "health",
		Short: "Health of the Hyperion deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := rt.client.Status.Health(cmd.Context())
			if err != nil {
				return err
			}
			if err := printJSON(rt.out, res); err != nil {
				return err
			}
			if !res.Healthy() {
				color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "warning: one or more services are not OK")
			}
			return nil
		},
	}
	status.AddCommand(health)
	return status
}
