package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Tip is a single claimable entry in a tip ledger. A claimed entry keeps its
// slot with a zeroed amount so that ledger indices stay stable.
type Tip struct {
	Amount    math.Int `json:"amount"`
	Timestamp int64    `json:"timestamp"`
}

// Validate performs basic validation on a tip ledger entry.
func (t Tip) Validate() error {
	if t.Amount.IsNil() || t.Amount.IsNegative() {
		return fmt.Errorf("tip amount cannot be nil or negative")
	}
	if t.Timestamp <= 0 {
		return fmt.Errorf("tip timestamp must be positive")
	}
	return nil
}

// TipList wraps a tip ledger for storage.
type TipList struct {
	Tips []Tip `json:"tips"`
}

// Feed is a recurring-payment configuration. One report per window
// [start + n*interval, start + n*interval + window) earns the reward.
type Feed struct {
	Denom     string   `json:"denom"`
	Reward    math.Int `json:"reward"`
	Balance   math.Int `json:"balance"`
	StartTime int64    `json:"start_time"`
	Interval  int64    `json:"interval"`
	Window    int64    `json:"window"`
}

// Validate performs basic validation on a feed configuration.
func (f Feed) Validate() error {
	if err := sdk.ValidateDenom(f.Denom); err != nil {
		return err
	}
	if f.Reward.IsNil() || !f.Reward.IsPositive() {
		return fmt.Errorf("feed reward must be positive")
	}
	if f.Balance.IsNil() || f.Balance.IsNegative() {
		return fmt.Errorf("feed balance cannot be nil or negative")
	}
	if f.Interval <= 0 {
		return fmt.Errorf("feed interval must be positive")
	}
	if f.Window <= 0 || f.Window >= f.Interval {
		return fmt.Errorf("feed window must be positive and shorter than the interval")
	}
	return nil
}

// FeedID derives the content-addressed feed identifier from the full
// parameter tuple. Variable-length fields are length-prefixed so distinct
// tuples can never encode to the same bytes.
func FeedID(queryId []byte, denom string, reward math.Int, startTime, interval, window int64) []byte {
	rewardBz := []byte(reward.String())

	bz := make([]byte, 0, 3+len(queryId)+len(denom)+len(rewardBz)+24)
	bz = append(bz, byte(len(queryId)))
	bz = append(bz, queryId...)
	bz = append(bz, byte(len(denom)))
	bz = append(bz, denom...)
	bz = append(bz, byte(len(rewardBz)))
	bz = append(bz, rewardBz...)
	bz = append(bz, sdk.Uint64ToBigEndian(uint64(startTime))...)
	bz = append(bz, sdk.Uint64ToBigEndian(uint64(interval))...)
	bz = append(bz, sdk.Uint64ToBigEndian(uint64(window))...)
	return crypto.Keccak256(bz)
}
