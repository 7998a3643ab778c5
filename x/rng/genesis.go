package rng

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tkernell/rng/x/rng/keeper"
	"github.com/tkernell/rng/x/rng/types"
)

// InitGenesis new rng genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(errorsmod.Wrapf(err, "error setting params"))
	}

	k.SetRequestCount(ctx, data.RequestCount)

	for _, req := range data.Requests {
		if err := req.Validate(); err != nil {
			panic(errorsmod.Wrapf(err, "error validating request %d", req.Id))
		}
		k.SetRequest(ctx, req)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	return types.NewGenesisState(k.GetParams(ctx), k.GetRequestCount(ctx), k.GetAllRequests(ctx))
}
