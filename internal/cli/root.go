package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/samvad-hq/hyperion-client/pkg/hyperion"
	"github.com/spf13/cobra"
)

// runtime carries the state shared by every subcommand.
type runtime struct {
	baseURL string
	timeout time.Duration
	out     io.Writer
	client  *hyperion.Client
}

// NewRootCommand builds the hyperion command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	rt := &runtime{out: out}

	root := &cobra.Command{
		Use:   "hyperion",
		Short: "Query a Hyperion history API from the command line",
		Long: `hyperion calls the endpoints of a Hyperion history node and prints the
decoded JSON response.

Examples:
  hyperion endpoints
  hyperion accounts get eosio --limit 5
  hyperion call get_actions account=eosio limit=10 sort=desc
  hyperion --base-url https://wax.eosrio.io status health`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			rt.client = hyperion.New(
				hyperion.WithBaseURL(rt.baseURL),
				hyperion.WithTimeout(rt.timeout),
				hyperion.WithUserAgent("hyperion-cli"),
			)
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&rt.baseURL, "base-url", hyperion.DefaultBaseURL, "Hyperion API base URL")
	root.PersistentFlags().DurationVar(&rt.timeout, "timeout", hyperion.DefaultTimeout, "per-request timeout")

	root.AddCommand(
		newEndpointsCmd(rt),
		newCallCmd(rt),
		newAccountsCmd(rt),
		newStatsCmd(rt),
		newStatusCmd(rt),
	)
	return root
}

// Execute runs the command tree and renders failures on errOut. It returns
// the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out)
	root.SetArgs(args)
	root.SetErr(errOut)
	if err := root.ExecuteContext(ctx); err != nil {
		printError(errOut, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	var apiErr *hyperion.APIError
	var argErr *hyperion.ArgumentError
	switch {
	case errors.As(err, &apiErr):
		red.Fprintf(w, "error: HTTP %d", apiErr.StatusCode)
		fmt.Fprintf(w, " %s\n", apiErr.Message)
		if reason := apiErr.Reason(); reason != "" {
			color.New(color.FgYellow).Fprintf(w, "  reason: %s\n", reason)
		}
	case errors.As(err, &argErr):
		red.Fprint(w, "error:")
		fmt.Fprintf(w, " %s: parameter %q: %v\n", argErr.Endpoint, argErr.Param, argErr.Err)
	default:
		red.Fprint(w, "error:")
		fmt.Fprintf(w, " %v\n", err)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseAssignments turns name=value pairs into call arguments typed per ep.
func parseAssignments(ep hyperion.Endpoint, pairs []string) (hyperion.Args, error) {
	args := make(hyperion.Args, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q is not of the form name=value", pair)
		}
		v, err := hyperion.ParseArg(ep, name, raw)
		if err != nil {
			return nil, err
		}
		args[name] = v
	}
	return args, nil
}
