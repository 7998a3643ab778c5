package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	rngtypes "github.com/tkernell/rng/types"
	"github.com/tkernell/rng/x/autopay/types"
)

// CreateDataFeed registers a recurring-payment feed with a zero starting balance
// and returns its content-addressed id.
func (k Keeper) CreateDataFeed(ctx sdk.Context, denom string, queryId []byte, reward math.Int, startTime, interval, window int64, queryData []byte) ([]byte, error) {
	if !rngtypes.ValidQueryID(queryId, queryData) {
		return nil, errorsmod.Wrapf(types.ErrQueryIdMismatch, "id %X", queryId)
	}
	if reward.IsNil() || !reward.IsPositive() {
		return nil, errorsmod.Wrapf(types.ErrInvalidReward, "got %s", reward)
	}
	if interval <= 0 {
		return nil, errorsmod.Wrapf(types.ErrInvalidWindow, "interval must be positive")
	}
	if window <= 0 || window >= interval {
		return nil, errorsmod.Wrapf(types.ErrInvalidWindow, "window %d must be positive and shorter than interval %d", window, interval)
	}

	feedId := types.FeedID(queryId, denom, reward, startTime, interval, window)
	if _, found := k.GetFeed(ctx, queryId, feedId); found {
		return nil, errorsmod.Wrapf(types.ErrFeedAlreadyConfigured, "feed %X", feedId)
	}

	feed := types.Feed{
		Denom:     denom,
		Reward:    reward,
		Balance:   math.ZeroInt(),
		StartTime: startTime,
		Interval:  interval,
		Window:    window,
	}
	k.SetFeed(ctx, queryId, feedId, feed)

	return feedId, nil
}

// FundDataFeed adds funds to an existing feed, moving the amount from the funder
// into module custody.
func (k Keeper) FundDataFeed(ctx sdk.Context, funder sdk.AccAddress, feedId, queryId []byte, amount math.Int) error {
	feed, found := k.GetFeed(ctx, queryId, feedId)
	if !found || !feed.Reward.IsPositive() {
		return errorsmod.Wrapf(types.ErrFeedNotFound, "feed %X for query %X", feedId, queryId)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrapf(types.ErrTransferRejected, "fund amount must be positive, got %s", amount)
	}

	feed.Balance = feed.Balance.Add(amount)
	k.SetFeed(ctx, queryId, feedId, feed)

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, sdk.NewCoins(sdk.NewCoin(feed.Denom, amount))); err != nil {
		return errorsmod.Wrapf(types.ErrTransferRejected, "%v", err)
	}

	return nil
}

// ClaimFeedRewards pays the reporter the feed rewards earned at the given
// timestamps. Each rewarded timestamp must hold the first report of its
// window. The whole batch succeeds or fails together; the claimed set and the
// reduced balance are persisted before any coins move.
func (k Keeper) ClaimFeedRewards(ctx sdk.Context, reporter string, feedId, queryId []byte, timestamps []int64) (math.Int, error) {
	feed, found := k.GetFeed(ctx, queryId, feedId)
	if !found || !feed.Reward.IsPositive() {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrFeedNotFound, "feed %X for query %X", feedId, queryId)
	}

	params := k.GetParams(ctx)
	now := ctx.BlockTime().Unix()

	total := math.ZeroInt()
	inBatch := make(map[int64]bool, len(timestamps))

	for _, ts := range timestamps {
		if !feed.Balance.IsPositive() {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrInsufficientBalance, "feed %X is empty", feedId)
		}
		if inBatch[ts] || k.IsFeedTimestampClaimed(ctx, feedId, ts) {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrAlreadyClaimed, "timestamp %d", ts)
		}
		if now-ts <= params.ClaimBuffer {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrTooEarly, "timestamp %d needs %ds of buffer", ts, params.ClaimBuffer)
		}
		if now-ts >= params.ClaimPeriod {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrTooStale, "timestamp %d is older than %ds", ts, params.ClaimPeriod)
		}
		if len(k.oracleKeeper.RetrieveValue(ctx, queryId, ts)) == 0 {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrNoValueReported, "timestamp %d", ts)
		}

		if ts < feed.StartTime {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrOutsideWindow, "timestamp %d precedes feed start %d", ts, feed.StartTime)
		}
		n := (ts - feed.StartTime) / feed.Interval
		windowStart := feed.StartTime + feed.Interval*n
		if ts-windowStart >= feed.Window {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrOutsideWindow, "timestamp %d missed window [%d, %d)", ts, windowStart, windowStart+feed.Window)
		}

		// only the first report of the window is rewarded
		if found, _, before := k.oracleKeeper.ValueTimestampBefore(ctx, queryId, ts); found && before >= windowStart {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrNotFirstInWindow, "timestamp %d", ts)
		}

		// partial payment when the balance runs low is a valid outcome
		pay := math.MinInt(feed.Balance, feed.Reward)
		feed.Balance = feed.Balance.Sub(pay)
		total = total.Add(pay)
		inBatch[ts] = true
	}

	// every processed timestamp must belong to the claimed reporter
	for _, ts := range timestamps {
		if actual := k.oracleKeeper.ReporterAt(ctx, queryId, ts); actual != reporter {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrReporterMismatch, "timestamp %d was reported by %s", ts, actual)
		}
	}

	// mark claims and reduce the balance before paying out
	k.SetFeed(ctx, queryId, feedId, feed)
	for _, ts := range timestamps {
		k.SetFeedTimestampClaimed(ctx, feedId, ts)
	}

	reporterAddr, err := sdk.AccAddressFromBech32(reporter)
	if err != nil {
		return math.ZeroInt(), errorsmod.Wrapf(types.ErrReporterMismatch, "invalid reporter address: %v", err)
	}
	if _, err := k.payReward(ctx, reporterAddr, feed.Denom, total); err != nil {
		return math.ZeroInt(), err
	}

	return total, nil
}
