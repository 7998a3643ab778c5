package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/tkernell/rng/x/rng/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryRequest(),
		GetCmdQueryRequests(),
		GetCmdQueryRewardClaimed(),
	)

	return cmd
}

// GetCmdQueryParams implements the params query command
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current rng parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryParams), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequest implements the request query command
func GetCmdQueryRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request [request-id]",
		Short: "Query a randomness request by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			requestId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse request id: %w", err)
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.NewQueryRequestParams(requestId))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryRequest), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequests implements the requests query command
func GetCmdQueryRequests() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Query all randomness requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryRequests), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRewardClaimed implements the reward-claimed query command
func GetCmdQueryRewardClaimed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward-claimed [request-id]",
		Short: "Query whether a request's seed reward was claimed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			requestId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse request id: %w", err)
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.NewQueryRequestParams(requestId))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryRewardClaimed), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
