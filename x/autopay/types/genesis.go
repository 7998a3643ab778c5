package types

import (
	"fmt"
)

// TipLedger is the genesis form of one (query id, denom) tip ledger.
type TipLedger struct {
	QueryId []byte `json:"query_id"`
	Denom   string `json:"denom"`
	Tips    []Tip  `json:"tips"`
}

// FeedRecord is the genesis form of one feed and its claimed timestamps.
type FeedRecord struct {
	QueryId []byte  `json:"query_id"`
	FeedId  []byte  `json:"feed_id"`
	Feed    Feed    `json:"feed"`
	Claimed []int64 `json:"claimed_timestamps"`
}

// GenesisState defines the autopay module genesis state.
type GenesisState struct {
	Params Params       `json:"params"`
	Tips   []TipLedger  `json:"tips"`
	Feeds  []FeedRecord `json:"feeds"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(params Params, tips []TipLedger, feeds []FeedRecord) GenesisState {
	return GenesisState{
		Params: params,
		Tips:   tips,
		Feeds:  feeds,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Tips:   []TipLedger{},
		Feeds:  []FeedRecord{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	for _, ledger := range gs.Tips {
		if len(ledger.QueryId) == 0 {
			return fmt.Errorf("tip ledger with empty query id")
		}
		prev := int64(0)
		for _, tip := range ledger.Tips {
			if err := tip.Validate(); err != nil {
				return fmt.Errorf("invalid tip for query %X: %w", ledger.QueryId, err)
			}
			// the binary search over a ledger requires strict ordering
			if tip.Timestamp <= prev {
				return fmt.Errorf("tip ledger for query %X is not strictly ordered", ledger.QueryId)
			}
			prev = tip.Timestamp
		}
	}

	for _, record := range gs.Feeds {
		if err := record.Feed.Validate(); err != nil {
			return fmt.Errorf("invalid feed %X: %w", record.FeedId, err)
		}
		if len(record.FeedId) == 0 || len(record.QueryId) == 0 {
			return fmt.Errorf("feed record with empty feed or query id")
		}
		for _, ts := range record.Claimed {
			if ts <= 0 {
				return fmt.Errorf("feed %X has a non-positive claimed timestamp", record.FeedId)
			}
		}
	}

	return nil
}
