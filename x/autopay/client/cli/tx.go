package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	rngtypes "github.com/tkernell/rng/types"
	"github.com/tkernell/rng/x/autopay/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		NewTipCmd(),
		NewClaimOneTimeTipCmd(),
		NewSetupFeedCmd(),
		NewFundFeedCmd(),
		NewClaimFeedTipCmd(),
	)

	return cmd
}

// NewTipCmd implements the tip command
func NewTipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip [denom] [amount] [query-data-hex]",
		Short: "Place a one-time tip on a query",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[1])
			}

			queryData, err := hex.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("failed to parse query data: %w", err)
			}

			msg := types.NewMsgTip(
				clientCtx.GetFromAddress(),
				args[0],
				rngtypes.QueryIDFromData(queryData),
				amount,
				queryData,
			)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// NewClaimOneTimeTipCmd implements the claim-tip command
func NewClaimOneTimeTipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-tip [denom] [query-id-hex] [timestamps]",
		Short: "Claim one-time tips earned by your reports (timestamps is a comma-separated list)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			queryId, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse query id: %w", err)
			}

			timestamps, err := parseTimestamps(args[2])
			if err != nil {
				return err
			}

			msg := types.NewMsgClaimOneTimeTip(
				clientCtx.GetFromAddress(),
				args[0],
				queryId,
				timestamps,
			)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// NewSetupFeedCmd implements the setup-feed command
func NewSetupFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup-feed [denom] [reward] [start-time] [interval] [window] [query-data-hex]",
		Short: "Register a recurring-payment data feed",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			reward, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid reward: %s", args[1])
			}

			startTime, err := cast.ToInt64E(args[2])
			if err != nil {
				return fmt.Errorf("failed to parse start time: %w", err)
			}
			interval, err := cast.ToInt64E(args[3])
			if err != nil {
				return fmt.Errorf("failed to parse interval: %w", err)
			}
			window, err := cast.ToInt64E(args[4])
			if err != nil {
				return fmt.Errorf("failed to parse window: %w", err)
			}

			queryData, err := hex.DecodeString(args[5])
			if err != nil {
				return fmt.Errorf("failed to parse query data: %w", err)
			}

			msg := types.NewMsgSetupFeed(
				clientCtx.GetFromAddress(),
				args[0],
				rngtypes.QueryIDFromData(queryData),
				reward,
				startTime,
				interval,
				window,
				queryData,
			)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// NewFundFeedCmd implements the fund-feed command
func NewFundFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund-feed [feed-id-hex] [query-id-hex] [amount]",
		Short: "Add funds to an existing data feed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedId, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse feed id: %w", err)
			}
			queryId, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse query id: %w", err)
			}

			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[2])
			}

			msg := types.NewMsgFundFeed(
				clientCtx.GetFromAddress(),
				feedId,
				queryId,
				amount,
			)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// NewClaimFeedTipCmd implements the claim-feed-tip command
func NewClaimFeedTipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-feed-tip [feed-id-hex] [query-id-hex] [reporter] [timestamps]",
		Short: "Claim feed rewards on behalf of a reporter (timestamps is a comma-separated list)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedId, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse feed id: %w", err)
			}
			queryId, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse query id: %w", err)
			}

			timestamps, err := parseTimestamps(args[3])
			if err != nil {
				return err
			}

			msg := types.NewMsgClaimFeedTip(
				clientCtx.GetFromAddress(),
				args[2],
				feedId,
				queryId,
				timestamps,
			)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func parseTimestamps(arg string) ([]int64, error) {
	parts := strings.Split(arg, ",")
	timestamps := make([]int64, 0, len(parts))
	for _, part := range parts {
		ts, err := cast.ToInt64E(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp %q: %w", part, err)
		}
		timestamps = append(timestamps, ts)
	}
	return timestamps, nil
}
