package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"

	rngtypes "github.com/tkernell/rng/types"
)

// RandomnessRequest is one seed aggregation round. The seed is folded once per
// contribution; after the deadline passes the last contributor may claim the
// reward and the oracle reports the finalized number under QueryId.
type RandomnessRequest struct {
	Id              uint64   `json:"id"`
	Seed            []byte   `json:"seed"`
	Deadline        int64    `json:"deadline"`
	SeedReward      math.Int `json:"seed_reward"`
	Denom           string   `json:"denom"`
	HashIterations  uint64   `json:"hash_iterations"`
	LastContributor string   `json:"last_contributor"`
	QueryId         []byte   `json:"query_id"`
}

// Validate performs basic validation on a randomness request.
func (r RandomnessRequest) Validate() error {
	if r.Id == 0 {
		return fmt.Errorf("request id must be positive")
	}
	if len(r.Seed) == 0 {
		return fmt.Errorf("request seed cannot be empty")
	}
	if r.Deadline <= 0 {
		return fmt.Errorf("request deadline must be positive")
	}
	if r.SeedReward.IsNil() || r.SeedReward.IsNegative() {
		return fmt.Errorf("seed reward cannot be nil or negative")
	}
	if err := sdk.ValidateDenom(r.Denom); err != nil {
		return err
	}
	if r.HashIterations == 0 {
		return fmt.Errorf("hash iterations must be positive")
	}
	if r.LastContributor != "" {
		if _, err := sdk.AccAddressFromBech32(r.LastContributor); err != nil {
			return fmt.Errorf("invalid last contributor: %w", err)
		}
	}
	if len(r.QueryId) != rngtypes.QueryIDLength {
		return fmt.Errorf("request query id must be %d bytes", rngtypes.QueryIDLength)
	}
	return nil
}

// FoldSeed absorbs a contribution into the request seed.
func FoldSeed(seed, data []byte) []byte {
	return crypto.Keccak256(append(append([]byte{}, seed...), data...))
}

// InitialSeed derives the starting seed of a request from the creator's seed
// data and per-block entropy.
func InitialSeed(seedData, entropy []byte) []byte {
	return crypto.Keccak256(append(append([]byte{}, seedData...), entropy...))
}
