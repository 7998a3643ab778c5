package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkernell/rng/x/autopay/types"
)

// setupFeed registers and funds a feed starting at base with interval 1000,
// window 100 and reward 50.
func setupFeed(t *testing.T, k Keeper, ctx sdk.Context, bk *mockBankKeeper, base int64, funding int64) ([]byte, []byte, []byte) {
	queryId, queryData := testQuery("feed-scenario")
	funder := testAddr("funder")
	fundAddr(bk, funder)

	feedId, err := k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(50), base, 1000, 100, queryData)
	require.NoError(t, err)
	require.NoError(t, k.FundDataFeed(ctx, funder, feedId, queryId, math.NewInt(funding)))

	return feedId, queryId, queryData
}

// TestCreateDataFeed tests feed registration and its validations.
func TestCreateDataFeed(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	queryId, queryData := testQuery("create-feed")

	feedId, err := k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(50), 0, 1000, 100, queryData)
	require.NoError(t, err)
	assert.Equal(t, types.FeedID(queryId, testDenom, math.NewInt(50), 0, 1000, 100), feedId)

	feed, found := k.GetFeed(ctx, queryId, feedId)
	require.True(t, found)
	assert.True(t, feed.Balance.IsZero())
	assert.Equal(t, math.NewInt(50), feed.Reward)

	// identical parameters collide
	_, err = k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(50), 0, 1000, 100, queryData)
	assert.ErrorIs(t, err, types.ErrFeedAlreadyConfigured)

	// a different reward is a different feed
	_, err = k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(60), 0, 1000, 100, queryData)
	assert.NoError(t, err)

	_, err = k.CreateDataFeed(ctx, testDenom, queryId, math.ZeroInt(), 0, 1000, 100, queryData)
	assert.ErrorIs(t, err, types.ErrInvalidReward)

	_, err = k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(50), 0, 1000, 1000, queryData)
	assert.ErrorIs(t, err, types.ErrInvalidWindow)

	_, err = k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(50), 0, 0, 0, queryData)
	assert.ErrorIs(t, err, types.ErrInvalidWindow)

	_, err = k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(50), 0, 1000, 100, []byte("wrong data"))
	assert.ErrorIs(t, err, types.ErrQueryIdMismatch)
}

// TestFundDataFeed tests funding an existing feed.
func TestFundDataFeed(t *testing.T) {
	k, ctx, bk, _ := setupKeeper(t)
	queryId, queryData := testQuery("fund-feed")
	funder := testAddr("funder")
	fundAddr(bk, funder)

	feedId, err := k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(50), 0, 1000, 100, queryData)
	require.NoError(t, err)

	require.NoError(t, k.FundDataFeed(ctx, funder, feedId, queryId, math.NewInt(200)))
	require.NoError(t, k.FundDataFeed(ctx, funder, feedId, queryId, math.NewInt(100)))

	feed, _ := k.GetFeed(ctx, queryId, feedId)
	assert.Equal(t, math.NewInt(300), feed.Balance)

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	assert.Equal(t, math.NewInt(300), bk.GetBalance(ctx, moduleAddr, testDenom).Amount)

	// unknown feed
	err = k.FundDataFeed(ctx, funder, []byte{1, 2, 3}, queryId, math.NewInt(10))
	assert.ErrorIs(t, err, types.ErrFeedNotFound)
}

// TestClaimFeedRewards tests the recurring claim happy path including the
// final partial payment.
func TestClaimFeedRewards(t *testing.T) {
	k, ctx, bk, ok := setupKeeper(t)
	base := int64(1_000_000)
	feedId, queryId, _ := setupFeed(t, k, ctx, bk, base, 120)
	reporter := testAddr("reporter")

	// first report of three different windows
	ts1 := base + 1050
	ts2 := base + 2010
	ts3 := base + 3090
	ok.addReport(queryId, ts1, []byte("a"), reporter.String())
	ok.addReport(queryId, ts2, []byte("b"), reporter.String())
	ok.addReport(queryId, ts3, []byte("c"), reporter.String())

	claimCtx := ctxAt(ctx, ts3+types.DefaultClaimBuffer+1)

	total, err := k.ClaimFeedRewards(claimCtx, reporter.String(), feedId, queryId, []int64{ts1, ts2})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100), total)

	// 20 left in the feed, reward is 50: partial payment
	total, err = k.ClaimFeedRewards(claimCtx, reporter.String(), feedId, queryId, []int64{ts3})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(20), total)

	feed, _ := k.GetFeed(ctx, queryId, feedId)
	assert.True(t, feed.Balance.IsZero())

	// 120 paid out in total, 1% fee on each batch: 100 -> 1, 20 -> 0
	assert.Equal(t, math.NewInt(119), bk.GetBalance(ctx, reporter, testDenom).Amount)

	assert.True(t, k.IsFeedTimestampClaimed(ctx, feedId, ts1))
	assert.True(t, k.IsFeedTimestampClaimed(ctx, feedId, ts2))
	assert.True(t, k.IsFeedTimestampClaimed(ctx, feedId, ts3))
}

// TestClaimFeedRewardsValidation walks the rejection ladder of a recurring
// claim.
func TestClaimFeedRewardsValidation(t *testing.T) {
	k, ctx, bk, ok := setupKeeper(t)
	base := int64(1_000_000)
	feedId, queryId, _ := setupFeed(t, k, ctx, bk, base, 1000)
	reporter := testAddr("reporter")

	ts := base + 1050
	ok.addReport(queryId, ts, []byte("v"), reporter.String())
	claimAt := ts + types.DefaultClaimBuffer + 1

	// unknown feed
	_, err := k.ClaimFeedRewards(ctxAt(ctx, claimAt), reporter.String(), []byte{9}, queryId, []int64{ts})
	assert.ErrorIs(t, err, types.ErrFeedNotFound)

	// buffer not elapsed
	_, err = k.ClaimFeedRewards(ctxAt(ctx, ts+types.DefaultClaimBuffer), reporter.String(), feedId, queryId, []int64{ts})
	assert.ErrorIs(t, err, types.ErrTooEarly)

	// stale claim
	_, err = k.ClaimFeedRewards(ctxAt(ctx, ts+types.DefaultClaimPeriod), reporter.String(), feedId, queryId, []int64{ts})
	assert.ErrorIs(t, err, types.ErrTooStale)

	// no report at the timestamp
	_, err = k.ClaimFeedRewards(ctxAt(ctx, claimAt), reporter.String(), feedId, queryId, []int64{ts + 1})
	assert.ErrorIs(t, err, types.ErrNoValueReported)

	// duplicate timestamp within one batch
	_, err = k.ClaimFeedRewards(ctxAt(ctx, claimAt), reporter.String(), feedId, queryId, []int64{ts, ts})
	assert.ErrorIs(t, err, types.ErrAlreadyClaimed)

	// wrong reporter
	_, err = k.ClaimFeedRewards(ctxAt(ctx, claimAt), testAddr("stranger").String(), feedId, queryId, []int64{ts})
	assert.ErrorIs(t, err, types.ErrReporterMismatch)

	// successful claim, then the timestamp is burned
	_, err = k.ClaimFeedRewards(ctxAt(ctx, claimAt), reporter.String(), feedId, queryId, []int64{ts})
	require.NoError(t, err)
	_, err = k.ClaimFeedRewards(ctxAt(ctx, claimAt), reporter.String(), feedId, queryId, []int64{ts})
	assert.ErrorIs(t, err, types.ErrAlreadyClaimed)
}

// TestClaimFeedRewardsWindows tests the window arithmetic.
func TestClaimFeedRewardsWindows(t *testing.T) {
	k, ctx, bk, ok := setupKeeper(t)
	base := int64(1_000_000)
	feedId, queryId, _ := setupFeed(t, k, ctx, bk, base, 1000)
	reporter := testAddr("reporter")

	// before the feed starts
	early := base - 10
	ok.addReport(queryId, early, []byte("v"), reporter.String())
	_, err := k.ClaimFeedRewards(ctxAt(ctx, early+types.DefaultClaimBuffer+1), reporter.String(), feedId, queryId, []int64{early})
	assert.ErrorIs(t, err, types.ErrOutsideWindow)

	// past the window of its interval
	missed := base + 1100
	ok.addReport(queryId, missed, []byte("v"), reporter.String())
	_, err = k.ClaimFeedRewards(ctxAt(ctx, missed+types.DefaultClaimBuffer+1), reporter.String(), feedId, queryId, []int64{missed})
	assert.ErrorIs(t, err, types.ErrOutsideWindow)

	// exactly on a window start is rewarded
	onStart := base + 2000
	ok.addReport(queryId, onStart, []byte("v"), reporter.String())
	total, err := k.ClaimFeedRewards(ctxAt(ctx, onStart+types.DefaultClaimBuffer+1), reporter.String(), feedId, queryId, []int64{onStart})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), total)
}

// TestClaimFeedRewardsFirstInWindow tests that only the first report of a
// window earns the reward.
func TestClaimFeedRewardsFirstInWindow(t *testing.T) {
	k, ctx, bk, ok := setupKeeper(t)
	base := int64(1_000_000)
	feedId, queryId, _ := setupFeed(t, k, ctx, bk, base, 1000)
	first := testAddr("first")
	second := testAddr("second")

	ts1 := base + 3010
	ts2 := base + 3080
	ok.addReport(queryId, ts1, []byte("a"), first.String())
	ok.addReport(queryId, ts2, []byte("b"), second.String())

	claimCtx := ctxAt(ctx, ts2+types.DefaultClaimBuffer+1)

	_, err := k.ClaimFeedRewards(claimCtx, second.String(), feedId, queryId, []int64{ts2})
	assert.ErrorIs(t, err, types.ErrNotFirstInWindow)

	total, err := k.ClaimFeedRewards(claimCtx, first.String(), feedId, queryId, []int64{ts1})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), total)
}

// TestClaimFeedRewardsEmptyFeed tests that an unfunded feed rejects claims.
func TestClaimFeedRewardsEmptyFeed(t *testing.T) {
	k, ctx, _, ok := setupKeeper(t)
	queryId, queryData := testQuery("empty-feed")
	reporter := testAddr("reporter")
	base := int64(1_000_000)

	feedId, err := k.CreateDataFeed(ctx, testDenom, queryId, math.NewInt(50), base, 1000, 100, queryData)
	require.NoError(t, err)

	ts := base + 1050
	ok.addReport(queryId, ts, []byte("v"), reporter.String())

	_, err = k.ClaimFeedRewards(ctxAt(ctx, ts+types.DefaultClaimBuffer+1), reporter.String(), feedId, queryId, []int64{ts})
	assert.ErrorIs(t, err, types.ErrInsufficientBalance)
}

// TestClaimFeedRewardsBatchAtomic tests that a bad timestamp rolls back the
// whole batch.
func TestClaimFeedRewardsBatchAtomic(t *testing.T) {
	k, ctx, bk, ok := setupKeeper(t)
	base := int64(1_000_000)
	feedId, queryId, _ := setupFeed(t, k, ctx, bk, base, 1000)
	reporter := testAddr("reporter")

	ts := base + 1050
	ok.addReport(queryId, ts, []byte("v"), reporter.String())

	claimCtx := ctxAt(ctx, ts+types.DefaultClaimBuffer+1)
	_, err := k.ClaimFeedRewards(claimCtx, reporter.String(), feedId, queryId, []int64{ts, ts + 3})
	require.Error(t, err)

	feed, _ := k.GetFeed(ctx, queryId, feedId)
	assert.Equal(t, math.NewInt(1000), feed.Balance)
	assert.False(t, k.IsFeedTimestampClaimed(ctx, feedId, ts))
	assert.True(t, bk.GetBalance(ctx, reporter, testDenom).Amount.IsZero())
}
