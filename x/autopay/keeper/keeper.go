package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tkernell/rng/x/autopay/types"
)

// Keeper of the autopay store. It owns every tip ledger and feed; the oracle
// record is read-only from here.
type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey storetypes.StoreKey

	bankKeeper   types.BankKeeper
	oracleKeeper types.OracleKeeper

	// module account receiving the fee share of every claim
	feeCollectorName string
}

func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	ak types.AccountKeeper,
	bk types.BankKeeper,
	ok types.OracleKeeper,
	feeCollectorName string,
) Keeper {

	// ensure autopay module account is set
	if addr := ak.GetModuleAddress(types.ModuleName); addr == nil {
		panic("the autopay module account has not been set")
	}

	return Keeper{
		cdc:              cdc,
		storeKey:         key,
		bankKeeper:       bk,
		oracleKeeper:     ok,
		feeCollectorName: feeCollectorName,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns the current autopay parameters.
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

// SetParams validates and stores the autopay parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyParams, k.cdc.MustMarshal(params))
	return nil
}

// GetTips returns the tip ledger for (queryId, denom), oldest entry first.
func (k Keeper) GetTips(ctx sdk.Context, queryId []byte, denom string) []types.Tip {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.TipsKey(queryId, denom))
	if bz == nil {
		return nil
	}

	var ledger types.TipList
	k.cdc.MustUnmarshal(bz, &ledger)
	return ledger.Tips
}

// SetTips stores the tip ledger for (queryId, denom).
func (k Keeper) SetTips(ctx sdk.Context, queryId []byte, denom string, tips []types.Tip) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.TipsKey(queryId, denom), k.cdc.MustMarshal(types.TipList{Tips: tips}))
}

// GetTipCount returns the number of ledger entries for (queryId, denom),
// claimed entries included.
func (k Keeper) GetTipCount(ctx sdk.Context, queryId []byte, denom string) uint64 {
	return uint64(len(k.GetTips(ctx, queryId, denom)))
}

// GetFeed returns the feed stored under (queryId, feedId).
func (k Keeper) GetFeed(ctx sdk.Context, queryId, feedId []byte) (types.Feed, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.FeedKey(queryId, feedId))
	if bz == nil {
		return types.Feed{}, false
	}

	var feed types.Feed
	k.cdc.MustUnmarshal(bz, &feed)
	return feed, true
}

// SetFeed stores the feed under (queryId, feedId).
func (k Keeper) SetFeed(ctx sdk.Context, queryId, feedId []byte, feed types.Feed) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.FeedKey(queryId, feedId), k.cdc.MustMarshal(feed))
}

// GetQueryFeeds returns every feed registered for a query.
func (k Keeper) GetQueryFeeds(ctx sdk.Context, queryId []byte) []types.DataFeedResponse {
	store := ctx.KVStore(k.storeKey)
	feedStore := prefix.NewStore(store, types.FeedsKey(queryId))

	var feeds []types.DataFeedResponse
	iterator := feedStore.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var feed types.Feed
		k.cdc.MustUnmarshal(iterator.Value(), &feed)
		feedId := append([]byte{}, iterator.Key()...)
		feeds = append(feeds, types.DataFeedResponse{FeedId: feedId, Feed: feed})
	}
	return feeds
}

// IsFeedTimestampClaimed reports whether the (feed, timestamp) pair has been
// rewarded already.
func (k Keeper) IsFeedTimestampClaimed(ctx sdk.Context, feedId []byte, timestamp int64) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.FeedClaimKey(feedId, timestamp))
}

// SetFeedTimestampClaimed marks a (feed, timestamp) pair as rewarded. Entries
// are never removed.
func (k Keeper) SetFeedTimestampClaimed(ctx sdk.Context, feedId []byte, timestamp int64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.FeedClaimKey(feedId, timestamp), []byte{1})
}

// payReward splits the total by the configured fee rate and pays the net
// amount to the recipient and the fee share to the fee collector. Claim state
// must have been persisted by the caller before this is invoked.
func (k Keeper) payReward(ctx sdk.Context, recipient sdk.AccAddress, denom string, total math.Int) (math.Int, error) {
	params := k.GetParams(ctx)

	fee := total.MulRaw(int64(params.Fee)).QuoRaw(1000)
	net := total.Sub(fee)

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(sdk.NewCoin(denom, net))); err != nil {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrTransferRejected, "%v", err)
	}

	if fee.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, k.feeCollectorName, sdk.NewCoins(sdk.NewCoin(denom, fee))); err != nil {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrTransferRejected, "%v", err)
		}
	}

	return net, nil
}

// GetAllTipLedgers returns every stored tip ledger. Used for genesis export.
func (k Keeper) GetAllTipLedgers(ctx sdk.Context) []types.TipLedger {
	store := ctx.KVStore(k.storeKey)
	tipStore := prefix.NewStore(store, types.KeyTips)

	var ledgers []types.TipLedger
	iterator := tipStore.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		idLen := int(key[0])
		queryId := append([]byte{}, key[1:1+idLen]...)
		denom := string(key[1+idLen:])

		var ledger types.TipList
		k.cdc.MustUnmarshal(iterator.Value(), &ledger)
		ledgers = append(ledgers, types.TipLedger{QueryId: queryId, Denom: denom, Tips: ledger.Tips})
	}
	return ledgers
}

// GetAllFeedRecords returns every stored feed along with its claimed
// timestamps. Used for genesis export.
func (k Keeper) GetAllFeedRecords(ctx sdk.Context) []types.FeedRecord {
	store := ctx.KVStore(k.storeKey)
	feedStore := prefix.NewStore(store, types.KeyFeeds)

	var records []types.FeedRecord
	iterator := feedStore.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		idLen := int(key[0])
		queryId := append([]byte{}, key[1:1+idLen]...)
		feedId := append([]byte{}, key[1+idLen:]...)

		var feed types.Feed
		k.cdc.MustUnmarshal(iterator.Value(), &feed)
		records = append(records, types.FeedRecord{
			QueryId: queryId,
			FeedId:  feedId,
			Feed:    feed,
			Claimed: k.GetFeedClaimedTimestamps(ctx, feedId),
		})
	}
	return records
}

// GetFeedClaimedTimestamps returns the claimed report timestamps of a feed in
// ascending order.
func (k Keeper) GetFeedClaimedTimestamps(ctx sdk.Context, feedId []byte) []int64 {
	store := ctx.KVStore(k.storeKey)
	claimStore := prefix.NewStore(store, append(append([]byte{}, types.KeyFeedClaims...), feedId...))

	var timestamps []int64
	iterator := claimStore.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		timestamps = append(timestamps, int64(sdk.BigEndianToUint64(iterator.Key())))
	}
	return timestamps
}
