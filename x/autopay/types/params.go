package types

import (
	"fmt"
)

// default parameter values
const (
	// DefaultFee is the claim fee in parts per thousand (1%).
	DefaultFee = uint64(10)

	// DefaultClaimBuffer is the minimum report age before its reward is
	// claimable: 12 hours in seconds.
	DefaultClaimBuffer = int64(12 * 60 * 60)

	// DefaultClaimPeriod is the feed-claim staleness bound: 12 weeks in seconds.
	DefaultClaimPeriod = int64(12 * 7 * 24 * 60 * 60)
)

// Params defines the settlement parameters for the autopay module.
type Params struct {
	// Fee is the share of every claim paid to the fee collector, in parts
	// per thousand.
	Fee uint64 `json:"fee"`
	// ClaimBuffer is the number of seconds a report must age before its
	// reward can be claimed.
	ClaimBuffer int64 `json:"claim_buffer"`
	// ClaimPeriod is the number of seconds after which a feed reward can no
	// longer be claimed.
	ClaimPeriod int64 `json:"claim_period"`
}

// DefaultParams returns default autopay module parameters
func DefaultParams() Params {
	return Params{
		Fee:         DefaultFee,
		ClaimBuffer: DefaultClaimBuffer,
		ClaimPeriod: DefaultClaimPeriod,
	}
}

// Validate performs basic validation on autopay parameters
func (p Params) Validate() error {
	if p.Fee >= 1000 {
		return fmt.Errorf("fee must be less than 1000 parts per thousand")
	}

	if p.ClaimBuffer <= 0 {
		return fmt.Errorf("claim buffer must be positive")
	}

	if p.ClaimPeriod <= p.ClaimBuffer {
		return fmt.Errorf("claim period must exceed the claim buffer")
	}

	return nil
}
