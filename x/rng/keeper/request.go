package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	rngtypes "github.com/tkernell/rng/types"
	"github.com/tkernell/rng/x/rng/types"
)

// CreateRequest opens a new seed aggregation round. The seed reward is moved
// into the module account and the oracle tip is forwarded to the settlement
// engine under the request's query id. Returns the allocated request id and
// the query id.
func (k Keeper) CreateRequest(ctx sdk.Context, creator sdk.AccAddress, denom string, seedReward, oracleTip math.Int, seedData []byte) (uint64, []byte, error) {
	params := k.GetParams(ctx)

	id := k.GetRequestCount(ctx) + 1
	queryData := rngtypes.RandomnessQueryData(id)
	queryId := rngtypes.QueryIDFromData(queryData)

	// the creator is the initial last contributor, so a round nobody
	// contributes to still has an eligible claimer
	req := types.RandomnessRequest{
		Id:              id,
		Seed:            types.InitialSeed(seedData, ctx.HeaderHash()),
		Deadline:        ctx.BlockTime().Unix() + params.SeedPeriod,
		SeedReward:      seedReward,
		Denom:           denom,
		HashIterations:  params.HashIterations,
		LastContributor: creator.String(),
		QueryId:         queryId,
	}

	k.SetRequest(ctx, req)
	k.SetRequestCount(ctx, id)

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denom, seedReward))); err != nil {
		return 0, nil, errorsmod.Wrapf(types.ErrTransferRejected, "%v", err)
	}

	if err := k.settlementKeeper.AddTip(ctx, creator, denom, queryId, oracleTip, queryData); err != nil {
		return 0, nil, err
	}

	return id, queryId, nil
}

// Contribute folds the contributor's data into an open request's seed and
// records them as the last contributor.
func (k Keeper) Contribute(ctx sdk.Context, contributor sdk.AccAddress, requestId uint64, data []byte) error {
	req, found := k.GetRequest(ctx, requestId)
	if !found {
		return errorsmod.Wrapf(types.ErrRequestNotFound, "id %d", requestId)
	}

	if ctx.BlockTime().Unix() >= req.Deadline {
		return errorsmod.Wrapf(types.ErrWindowClosed, "deadline %d", req.Deadline)
	}

	req.Seed = types.FoldSeed(req.Seed, data)
	req.LastContributor = contributor.String()
	k.SetRequest(ctx, req)

	return nil
}

// ClaimReward pays a closed request's seed reward to its last contributor.
// The reward is zeroed and persisted before the payout.
func (k Keeper) ClaimReward(ctx sdk.Context, claimer sdk.AccAddress, requestId uint64) (math.Int, error) {
	req, found := k.GetRequest(ctx, requestId)
	if !found {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrRequestNotFound, "id %d", requestId)
	}

	if ctx.BlockTime().Unix() <= req.Deadline {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrWindowOpen, "deadline %d", req.Deadline)
	}

	if !req.SeedReward.IsPositive() {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrAlreadyClaimed, "request %d", requestId)
	}

	if req.LastContributor != claimer.String() {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrNotLastContributor, "last contributor is %s", req.LastContributor)
	}

	reward := req.SeedReward
	req.SeedReward = math.ZeroInt()
	k.SetRequest(ctx, req)

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, claimer, sdk.NewCoins(sdk.NewCoin(req.Denom, reward))); err != nil {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrTransferRejected, "%v", err)
	}

	return reward, nil
}
