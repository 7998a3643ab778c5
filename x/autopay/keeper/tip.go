package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	rngtypes "github.com/tkernell/rng/types"
	"github.com/tkernell/rng/x/autopay/types"
)

// AddTip appends a tip to the ledger of (queryId, denom), or coalesces it into
// the most recent entry when no report has consumed that entry yet. The
// coalescing rule is what keeps ledger timestamps strictly ordered: a second
// tip in the same period bumps the open entry instead of creating a duplicate
// timestamp.
func (k Keeper) AddTip(ctx sdk.Context, tipper sdk.AccAddress, denom string, queryId []byte, amount math.Int, queryData []byte) error {
	if !rngtypes.ValidQueryID(queryId, queryData) {
		return errorsmod.Wrapf(types.ErrQueryIdMismatch, "id %X", queryId)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrapf(types.ErrTransferRejected, "tip amount must be positive, got %s", amount)
	}

	now := ctx.BlockTime().Unix()
	tips := k.GetTips(ctx, queryId, denom)

	if len(tips) == 0 {
		tips = append(tips, types.Tip{Amount: amount, Timestamp: now})
	} else {
		last := tips[len(tips)-1]
		// The probe deliberately compares the latest report timestamp to the
		// previous entry's timestamp, not to the entry about to exist.
		found, _, reportTs := k.oracleKeeper.ValueTimestampBefore(ctx, queryId, now+1)
		if found && reportTs >= last.Timestamp {
			// the open entry has been consumed by a report, start a new one
			tips = append(tips, types.Tip{Amount: amount, Timestamp: now})
		} else {
			last.Amount = last.Amount.Add(amount)
			last.Timestamp = now
			tips[len(tips)-1] = last
		}
	}

	k.SetTips(ctx, queryId, denom, tips)

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, tipper, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
		return errorsmod.Wrapf(types.ErrTransferRejected, "%v", err)
	}

	return nil
}

// ClaimOneTimeTips pays the claimer the tips earned by their reports at the
// given timestamps. The whole batch succeeds or fails together; claimed
// entries are zeroed and persisted before any coins move.
func (k Keeper) ClaimOneTimeTips(ctx sdk.Context, claimer sdk.AccAddress, denom string, queryId []byte, timestamps []int64) (math.Int, error) {
	params := k.GetParams(ctx)
	now := ctx.BlockTime().Unix()

	tips := k.GetTips(ctx, queryId, denom)
	total := math.ZeroInt()

	for _, ts := range timestamps {
		if len(tips) == 0 {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrNoTips, "query %X denom %s", queryId, denom)
		}
		if now-ts <= params.ClaimBuffer {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrTooEarly, "timestamp %d needs %ds of buffer", ts, params.ClaimBuffer)
		}
		if reporter := k.oracleKeeper.ReporterAt(ctx, queryId, ts); reporter != claimer.String() {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrReporterMismatch, "timestamp %d was reported by %s", ts, reporter)
		}
		if len(k.oracleKeeper.RetrieveValue(ctx, queryId, ts)) == 0 {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrNoValueReported, "timestamp %d", ts)
		}

		i := tipIndexBefore(tips, ts)
		entry := tips[i]

		// only the first report on or after the entry earns it
		if found, _, before := k.oracleKeeper.ValueTimestampBefore(ctx, queryId, ts); found && before >= entry.Timestamp {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrEarnedByPriorReport, "timestamp %d", ts)
		}
		if ts <= entry.Timestamp {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrNotEligible, "timestamp %d precedes the tip at %d", ts, entry.Timestamp)
		}
		if !entry.Amount.IsPositive() {
			return math.ZeroInt(), errorsmod.Wrapf(types.ErrAlreadyClaimed, "timestamp %d", ts)
		}

		total = total.Add(entry.Amount)
		tips[i].Amount = math.ZeroInt()
	}

	// zero the claimed entries before paying out
	k.SetTips(ctx, queryId, denom, tips)

	if _, err := k.payReward(ctx, claimer, denom, total); err != nil {
		return math.ZeroInt(), err
	}

	return total, nil
}

// GetCurrentTip returns the unconsumed tip for (queryId, denom): the latest
// ledger entry's amount, unless a report at or after that entry has already
// earned it.
func (k Keeper) GetCurrentTip(ctx sdk.Context, queryId []byte, denom string) math.Int {
	tips := k.GetTips(ctx, queryId, denom)
	if len(tips) == 0 {
		return math.ZeroInt()
	}

	last := tips[len(tips)-1]
	found, _, reportTs := k.oracleKeeper.ValueTimestampBefore(ctx, queryId, ctx.BlockTime().Unix()+1)
	if found && reportTs >= last.Timestamp {
		return math.ZeroInt()
	}
	return last.Amount
}

// tipIndexBefore returns the index of the entry with the greatest timestamp
// not exceeding the given one. With a ledger of strictly increasing
// timestamps the answer is unique; a timestamp older than the whole ledger
// resolves to index 0 and is rejected by the eligibility check afterwards.
func tipIndexBefore(tips []types.Tip, timestamp int64) int {
	min, max := 0, len(tips)
	for max-min > 1 {
		mid := (max + min) / 2
		if tips[mid].Timestamp > timestamp {
			max = mid
		} else {
			min = mid
		}
	}
	return min
}
