package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/tkernell/rng/x/autopay/types"
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
		GetCmdQueryCurrentTip(),
		GetCmdQueryPastTips(),
		GetCmdQueryTipCount(),
		GetCmdQueryDataFeed(),
		GetCmdQueryDataFeeds(),
		GetCmdQueryFeedClaimed(),
	)

	return cmd
}

// GetCmdQueryParams implements the params query command
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current autopay parameters",
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

// GetCmdQueryCurrentTip implements the current-tip query command
func GetCmdQueryCurrentTip() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current-tip [query-id-hex] [denom]",
		Short: "Query the unclaimed tip total for a query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryId, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse query id: %w", err)
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.NewQueryTipsParams(queryId, args[1]))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryCurrentTip), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPastTips implements the past-tips query command
func GetCmdQueryPastTips() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "past-tips [query-id-hex] [denom]",
		Short: "Query the full tip ledger for a query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryId, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse query id: %w", err)
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.NewQueryTipsParams(queryId, args[1]))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryPastTips), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTipCount implements the tip-count query command
func GetCmdQueryTipCount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip-count [query-id-hex] [denom]",
		Short: "Query the number of tip ledger entries for a query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryId, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse query id: %w", err)
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.NewQueryTipsParams(queryId, args[1]))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryTipCount), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryDataFeed implements the data-feed query command
func GetCmdQueryDataFeed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data-feed [query-id-hex] [feed-id-hex]",
		Short: "Query a single data feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryId, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse query id: %w", err)
			}
			feedId, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse feed id: %w", err)
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.NewQueryDataFeedParams(queryId, feedId))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryDataFeed), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryDataFeeds implements the data-feeds query command
func GetCmdQueryDataFeeds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data-feeds [query-id-hex]",
		Short: "Query every data feed registered for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryId, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse query id: %w", err)
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.NewQueryDataFeedsParams(queryId))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryDataFeeds), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryFeedClaimed implements the feed-claimed query command
func GetCmdQueryFeedClaimed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed-claimed [feed-id-hex] [timestamp]",
		Short: "Query whether a feed reward was already claimed for a report timestamp",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			feedId, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse feed id: %w", err)
			}
			timestamp, err := cast.ToInt64E(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse timestamp: %w", err)
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.NewQueryFeedClaimedParams(feedId, timestamp))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryFeedClaimed), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
