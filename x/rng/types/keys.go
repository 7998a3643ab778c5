package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "rng"

	// StoreKey is the default store key for the module
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's legacy query route
	QuerierRoute = ModuleName
)

// KV Store key prefix bytes
const (
	prefixParams = iota + 1
	prefixRequestCount
	prefixRequests
)

// KV Store key prefixes
var (
	KeyParams       = []byte{prefixParams}
	KeyRequestCount = []byte{prefixRequestCount}
	KeyRequests     = []byte{prefixRequests}
)

// RequestKey returns the store key for the randomness request with the given id.
func RequestKey(id uint64) []byte {
	return append(append([]byte{}, KeyRequests...), sdk.Uint64ToBigEndian(id)...)
}
