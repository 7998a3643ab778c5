package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/tkernell/rng/x/rng/types"
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
		NewRequestRandomnessCmd(),
		NewContributeSeedCmd(),
		NewClaimSeedRewardCmd(),
	)

	return cmd
}

// NewRequestRandomnessCmd implements the request command
func NewRequestRandomnessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request [denom] [seed-reward] [oracle-tip] [seed-data]",
		Short: "Open a new randomness request",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seedReward, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid seed reward: %s", args[1])
			}
			oracleTip, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid oracle tip: %s", args[2])
			}

			msg := types.NewMsgRequestRandomness(
				clientCtx.GetFromAddress(),
				args[0],
				seedReward,
				oracleTip,
				[]byte(args[3]),
			)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// NewContributeSeedCmd implements the contribute command
func NewContributeSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contribute [request-id] [data]",
		Short: "Contribute seed data to an open randomness request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse request id: %w", err)
			}

			msg := types.NewMsgContributeSeed(
				clientCtx.GetFromAddress(),
				requestId,
				[]byte(args[1]),
			)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// NewClaimSeedRewardCmd implements the claim-reward command
func NewClaimSeedRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-reward [request-id]",
		Short: "Claim the seed reward of a closed request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse request id: %w", err)
			}

			msg := types.NewMsgClaimSeedReward(clientCtx.GetFromAddress(), requestId)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
