package types

import (
	"bytes"
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// QueryIDLength is the byte length of a derived query identifier.
	QueryIDLength = 32

	// MaxReservedQueryID is the largest integer-valued query id that is exempt
	// from the query-data hash check. Low ids are reserved for well-known
	// queries whose data layout predates content addressing.
	MaxReservedQueryID = 100

	// RandomnessQueryType tags the query data generated for randomness requests.
	RandomnessQueryType = "RandomNumber"
)

// QueryIDFromData derives the canonical query id for the given query data.
func QueryIDFromData(queryData []byte) []byte {
	return crypto.Keccak256(queryData)
}

// IsReservedQueryID reports whether the query id encodes an integer no greater
// than MaxReservedQueryID.
func IsReservedQueryID(queryId []byte) bool {
	if len(queryId) == 0 || len(queryId) > QueryIDLength {
		return false
	}
	return new(big.Int).SetBytes(queryId).Cmp(big.NewInt(MaxReservedQueryID)) <= 0
}

// MatchesQueryData reports whether the query id is the hash of the query data.
func MatchesQueryData(queryId, queryData []byte) bool {
	return bytes.Equal(queryId, QueryIDFromData(queryData))
}

// ValidQueryID reports whether the query id is acceptable for the given query
// data: either reserved, or derived from the data by hashing.
func ValidQueryID(queryId, queryData []byte) bool {
	return IsReservedQueryID(queryId) || MatchesQueryData(queryId, queryData)
}

// RandomnessQueryData builds the query data for the randomness request with
// the given sequential id.
func RandomnessQueryData(id uint64) []byte {
	bz := make([]byte, 0, len(RandomnessQueryType)+8)
	bz = append(bz, RandomnessQueryType...)
	return append(bz, sdk.Uint64ToBigEndian(id)...)
}
