package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tkernell/rng/x/rng/types"
)

// Keeper of the rng store. It owns every randomness request and escrows the
// seed rewards; oracle tips are handed off to the settlement keeper.
type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey storetypes.StoreKey

	bankKeeper       types.BankKeeper
	settlementKeeper types.SettlementKeeper
}

func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	ak types.AccountKeeper,
	bk types.BankKeeper,
	sk types.SettlementKeeper,
) Keeper {

	// ensure rng module account is set
	if addr := ak.GetModuleAddress(types.ModuleName); addr == nil {
		panic("the rng module account has not been set")
	}

	return Keeper{
		cdc:              cdc,
		storeKey:         key,
		bankKeeper:       bk,
		settlementKeeper: sk,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns the current rng parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyParams)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams validates and stores the rng parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyParams, k.cdc.MustMarshal(params))
	return nil
}

// GetRequestCount returns the id of the most recently opened request.
func (k Keeper) GetRequestCount(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyRequestCount)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// SetRequestCount stores the request id allocator.
func (k Keeper) SetRequestCount(ctx sdk.Context, count uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyRequestCount, sdk.Uint64ToBigEndian(count))
}

// GetRequest returns the randomness request with the given id.
func (k Keeper) GetRequest(ctx sdk.Context, id uint64) (types.RandomnessRequest, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.RequestKey(id))
	if bz == nil {
		return types.RandomnessRequest{}, false
	}

	var req types.RandomnessRequest
	k.cdc.MustUnmarshal(bz, &req)
	return req, true
}

// SetRequest stores a randomness request under its id.
func (k Keeper) SetRequest(ctx sdk.Context, req types.RandomnessRequest) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.RequestKey(req.Id), k.cdc.MustMarshal(req))
}

// GetAllRequests returns every stored request in id order. Used for genesis
// export and the requests query.
func (k Keeper) GetAllRequests(ctx sdk.Context) []types.RandomnessRequest {
	store := ctx.KVStore(k.storeKey)
	reqStore := prefix.NewStore(store, types.KeyRequests)

	var requests []types.RandomnessRequest
	iterator := reqStore.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var req types.RandomnessRequest
		k.cdc.MustUnmarshal(iterator.Value(), &req)
		requests = append(requests, req)
	}
	return requests
}
