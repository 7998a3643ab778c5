package types

import (
	"fmt"
)

// default parameter values
const (
	// DefaultSeedPeriod is the length of a contribution window: one hour in
	// seconds.
	DefaultSeedPeriod = int64(60 * 60)

	// DefaultHashIterations is the number of hash folds a reporter applies to
	// the finalized seed when deriving the random number.
	DefaultHashIterations = uint64(1000)
)

// Params defines the seed aggregation parameters for the rng module.
type Params struct {
	// SeedPeriod is the number of seconds a request accepts contributions.
	SeedPeriod int64 `json:"seed_period"`
	// HashIterations is recorded on each request at creation time so that a
	// later parameter change never alters an open round.
	HashIterations uint64 `json:"hash_iterations"`
}

// DefaultParams returns default rng module parameters
func DefaultParams() Params {
	return Params{
		SeedPeriod:     DefaultSeedPeriod,
		HashIterations: DefaultHashIterations,
	}
}

// Validate performs basic validation on rng parameters
func (p Params) Validate() error {
	if p.SeedPeriod <= 0 {
		return fmt.Errorf("seed period must be positive")
	}

	if p.HashIterations == 0 {
		return fmt.Errorf("hash iterations must be positive")
	}

	return nil
}
