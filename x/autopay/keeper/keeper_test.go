package keeper

import (
	"sort"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"

	rngtypes "github.com/tkernell/rng/types"
	"github.com/tkernell/rng/x/autopay/types"
)

// mockAccountKeeper resolves module addresses the same way the auth module
// does.
type mockAccountKeeper struct{}

func (mockAccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

// mockBankKeeper tracks balances in memory and rejects overdrafts.
type mockBankKeeper struct {
	balances map[string]sdk.Coins
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func (m *mockBankKeeper) setBalance(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = coins
}

func (m *mockBankKeeper) GetBalance(_ sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *mockBankKeeper) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	remaining, negative := m.balances[from.String()].SafeSub(amt...)
	if negative {
		return types.ErrTransferRejected
	}
	m.balances[from.String()] = remaining
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

func (m *mockBankKeeper) SendCoinsFromAccountToModule(_ sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *mockBankKeeper) SendCoinsFromModuleToAccount(_ sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (m *mockBankKeeper) SendCoinsFromModuleToModule(_ sdk.Context, senderModule, recipientModule string, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule), authtypes.NewModuleAddress(recipientModule), amt)
}

// report is one entry of the mock oracle record.
type report struct {
	timestamp int64
	value     []byte
	reporter  string
}

// mockOracleKeeper holds an append-only record per query id, ascending by
// timestamp.
type mockOracleKeeper struct {
	reports map[string][]report
}

func newMockOracleKeeper() *mockOracleKeeper {
	return &mockOracleKeeper{reports: make(map[string][]report)}
}

func (m *mockOracleKeeper) addReport(queryId []byte, timestamp int64, value []byte, reporter string) {
	key := string(queryId)
	m.reports[key] = append(m.reports[key], report{timestamp: timestamp, value: value, reporter: reporter})
	sort.Slice(m.reports[key], func(i, j int) bool {
		return m.reports[key][i].timestamp < m.reports[key][j].timestamp
	})
}

func (m *mockOracleKeeper) RetrieveValue(_ sdk.Context, queryId []byte, timestamp int64) []byte {
	for _, r := range m.reports[string(queryId)] {
		if r.timestamp == timestamp {
			return r.value
		}
	}
	return nil
}

func (m *mockOracleKeeper) ValueTimestampBefore(_ sdk.Context, queryId []byte, timestamp int64) (bool, []byte, int64) {
	var (
		found bool
		best  report
	)
	for _, r := range m.reports[string(queryId)] {
		if r.timestamp < timestamp {
			best = r
			found = true
		}
	}
	if !found {
		return false, nil, 0
	}
	return true, best.value, best.timestamp
}

func (m *mockOracleKeeper) ReporterAt(_ sdk.Context, queryId []byte, timestamp int64) string {
	for _, r := range m.reports[string(queryId)] {
		if r.timestamp == timestamp {
			return r.reporter
		}
	}
	return ""
}

// setupKeeper creates a new Keeper instance backed by in-memory stores and
// mocks for testing.
func setupKeeper(t *testing.T) (Keeper, sdk.Context, *mockBankKeeper, *mockOracleKeeper) {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)

	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, tmproto.Header{}, false, log.NewNopLogger())

	bankKeeper := newMockBankKeeper()
	oracleKeeper := newMockOracleKeeper()

	k := NewKeeper(
		codec.NewLegacyAmino(),
		storeKey,
		mockAccountKeeper{},
		bankKeeper,
		oracleKeeper,
		authtypes.FeeCollectorName,
	)

	return k, ctx, bankKeeper, oracleKeeper
}

// testQuery returns a (queryId, queryData) pair derived from the given tag.
func testQuery(tag string) ([]byte, []byte) {
	queryData := []byte(tag)
	return rngtypes.QueryIDFromData(queryData), queryData
}

func testAddr(tag string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, tag)
	return sdk.AccAddress(bz)
}

// TestSetAndGetParams tests parameter storage and defaults
func TestSetAndGetParams(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)

	// unset params fall back to defaults
	assert.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.Params{Fee: 25, ClaimBuffer: 100, ClaimPeriod: 1000}
	require.NoError(t, k.SetParams(ctx, params))
	assert.Equal(t, params, k.GetParams(ctx))

	// invalid params are rejected
	err := k.SetParams(ctx, types.Params{Fee: 1000, ClaimBuffer: 100, ClaimPeriod: 1000})
	assert.Error(t, err)
}

// TestSetAndGetTips tests the tip ledger storage round trip
func TestSetAndGetTips(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	queryId, _ := testQuery("storage-query")

	assert.Nil(t, k.GetTips(ctx, queryId, "stake"))

	tips := []types.Tip{
		{Amount: math.NewInt(10), Timestamp: 100},
		{Amount: math.NewInt(20), Timestamp: 200},
	}
	k.SetTips(ctx, queryId, "stake", tips)
	assert.Equal(t, tips, k.GetTips(ctx, queryId, "stake"))

	// ledgers are scoped per denom
	assert.Nil(t, k.GetTips(ctx, queryId, "other"))
}

// TestGetTipCount tests the ledger length accessor and its query route
func TestGetTipCount(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	queryId, _ := testQuery("count-query")

	assert.Equal(t, uint64(0), k.GetTipCount(ctx, queryId, "stake"))

	// claimed (zeroed) entries still count
	k.SetTips(ctx, queryId, "stake", []types.Tip{
		{Amount: math.NewInt(10), Timestamp: 100},
		{Amount: math.ZeroInt(), Timestamp: 200},
		{Amount: math.NewInt(30), Timestamp: 300},
	})
	assert.Equal(t, uint64(3), k.GetTipCount(ctx, queryId, "stake"))
	assert.Equal(t, uint64(0), k.GetTipCount(ctx, queryId, "other"))

	cdc := codec.NewLegacyAmino()
	querier := NewQuerier(k, cdc)

	bz, err := cdc.MarshalJSON(types.NewQueryTipsParams(queryId, "stake"))
	require.NoError(t, err)

	res, err := querier(ctx, []string{types.QueryTipCount}, abci.RequestQuery{Data: bz})
	require.NoError(t, err)

	var count uint64
	require.NoError(t, cdc.UnmarshalJSON(res, &count))
	assert.Equal(t, uint64(3), count)
}

// TestSetAndGetFeed tests feed storage and the per-query feed index
func TestSetAndGetFeed(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	queryId, _ := testQuery("feed-query")

	_, found := k.GetFeed(ctx, queryId, []byte{1, 2, 3})
	assert.False(t, found)

	feed := types.Feed{
		Denom:     "stake",
		Reward:    math.NewInt(50),
		Balance:   math.NewInt(200),
		StartTime: 1000,
		Interval:  100,
		Window:    10,
	}
	feedId := types.FeedID(queryId, feed.Denom, feed.Reward, feed.StartTime, feed.Interval, feed.Window)
	k.SetFeed(ctx, queryId, feedId, feed)

	stored, found := k.GetFeed(ctx, queryId, feedId)
	require.True(t, found)
	assert.Equal(t, feed, stored)

	feeds := k.GetQueryFeeds(ctx, queryId)
	require.Len(t, feeds, 1)
	assert.Equal(t, feedId, feeds[0].FeedId)
	assert.Equal(t, feed, feeds[0].Feed)
}

// TestFeedTimestampClaims tests the claimed-timestamp flags
func TestFeedTimestampClaims(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	feedId := []byte{0xaa, 0xbb}

	assert.False(t, k.IsFeedTimestampClaimed(ctx, feedId, 500))

	k.SetFeedTimestampClaimed(ctx, feedId, 500)
	k.SetFeedTimestampClaimed(ctx, feedId, 300)

	assert.True(t, k.IsFeedTimestampClaimed(ctx, feedId, 500))
	assert.True(t, k.IsFeedTimestampClaimed(ctx, feedId, 300))
	assert.False(t, k.IsFeedTimestampClaimed(ctx, feedId, 400))

	// export order is ascending
	assert.Equal(t, []int64{300, 500}, k.GetFeedClaimedTimestamps(ctx, feedId))
}

// TestGetAllTipLedgers tests the genesis export of tip ledgers
func TestGetAllTipLedgers(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	queryA, _ := testQuery("export-a")
	queryB, _ := testQuery("export-b")

	k.SetTips(ctx, queryA, "stake", []types.Tip{{Amount: math.NewInt(1), Timestamp: 10}})
	k.SetTips(ctx, queryB, "token", []types.Tip{{Amount: math.NewInt(2), Timestamp: 20}})

	ledgers := k.GetAllTipLedgers(ctx)
	require.Len(t, ledgers, 2)
	for _, ledger := range ledgers {
		switch ledger.Denom {
		case "stake":
			assert.Equal(t, queryA, ledger.QueryId)
		case "token":
			assert.Equal(t, queryB, ledger.QueryId)
		default:
			t.Fatalf("unexpected denom %s", ledger.Denom)
		}
	}
}

// TestGetAllFeedRecords tests the genesis export of feeds and claims
func TestGetAllFeedRecords(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	queryId, _ := testQuery("export-feed")

	feed := types.Feed{
		Denom:     "stake",
		Reward:    math.NewInt(5),
		Balance:   math.NewInt(100),
		StartTime: 0,
		Interval:  60,
		Window:    10,
	}
	feedId := types.FeedID(queryId, feed.Denom, feed.Reward, feed.StartTime, feed.Interval, feed.Window)
	k.SetFeed(ctx, queryId, feedId, feed)
	k.SetFeedTimestampClaimed(ctx, feedId, 120)

	records := k.GetAllFeedRecords(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, queryId, records[0].QueryId)
	assert.Equal(t, feedId, records[0].FeedId)
	assert.Equal(t, feed, records[0].Feed)
	assert.Equal(t, []int64{120}, records[0].Claimed)
}

// ctxAt returns the context pinned to the given unix block time.
func ctxAt(ctx sdk.Context, unix int64) sdk.Context {
	return ctx.WithBlockTime(time.Unix(unix, 0))
}
