package autopay

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tkernell/rng/x/autopay/keeper"
	"github.com/tkernell/rng/x/autopay/types"
)

// InitGenesis new autopay genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(errorsmod.Wrapf(err, "error setting params"))
	}

	for _, ledger := range data.Tips {
		k.SetTips(ctx, ledger.QueryId, ledger.Denom, ledger.Tips)
	}

	for _, record := range data.Feeds {
		if err := record.Feed.Validate(); err != nil {
			panic(errorsmod.Wrapf(err, "error validating feed %X", record.FeedId))
		}
		k.SetFeed(ctx, record.QueryId, record.FeedId, record.Feed)
		for _, ts := range record.Claimed {
			k.SetFeedTimestampClaimed(ctx, record.FeedId, ts)
		}
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	return types.NewGenesisState(k.GetParams(ctx), k.GetAllTipLedgers(ctx), k.GetAllFeedRecords(ctx))
}
