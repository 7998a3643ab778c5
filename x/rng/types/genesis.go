package types

import (
	"fmt"
)

// GenesisState defines the rng module genesis state.
type GenesisState struct {
	Params       Params              `json:"params"`
	RequestCount uint64              `json:"request_count"`
	Requests     []RandomnessRequest `json:"requests"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(params Params, requestCount uint64, requests []RandomnessRequest) GenesisState {
	return GenesisState{
		Params:       params,
		RequestCount: requestCount,
		Requests:     requests,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		RequestCount: 0,
		Requests:     []RandomnessRequest{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[uint64]bool, len(gs.Requests))
	for _, req := range gs.Requests {
		if err := req.Validate(); err != nil {
			return fmt.Errorf("invalid request %d: %w", req.Id, err)
		}
		if req.Id > gs.RequestCount {
			return fmt.Errorf("request id %d exceeds request count %d", req.Id, gs.RequestCount)
		}
		if seen[req.Id] {
			return fmt.Errorf("duplicate request id %d", req.Id)
		}
		seen[req.Id] = true
	}

	return nil
}
