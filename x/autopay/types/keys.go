package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "autopay"

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
	prefixTips
	prefixFeeds
	prefixFeedClaims
)

// KV Store key prefixes
var (
	KeyParams     = []byte{prefixParams}
	KeyTips       = []byte{prefixTips}
	KeyFeeds      = []byte{prefixFeeds}
	KeyFeedClaims = []byte{prefixFeedClaims}
)

// queryIdPrefix length-prefixes a query id so that variable-length reserved
// ids cannot collide with the keys that follow them.
func queryIdPrefix(prefix, queryId []byte) []byte {
	key := append([]byte{}, prefix...)
	key = append(key, byte(len(queryId)))
	return append(key, queryId...)
}

// TipsKey returns the store key for the tip ledger of (queryId, denom).
func TipsKey(queryId []byte, denom string) []byte {
	return append(queryIdPrefix(KeyTips, queryId), denom...)
}

// FeedsKey returns the store prefix holding every feed registered for a query.
func FeedsKey(queryId []byte) []byte {
	return queryIdPrefix(KeyFeeds, queryId)
}

// FeedKey returns the store key for a single feed.
func FeedKey(queryId, feedId []byte) []byte {
	return append(FeedsKey(queryId), feedId...)
}

// FeedClaimKey returns the store key marking a rewarded (feed, timestamp) pair.
func FeedClaimKey(feedId []byte, timestamp int64) []byte {
	key := append([]byte{}, KeyFeedClaims...)
	key = append(key, feedId...)
	return append(key, sdk.Uint64ToBigEndian(uint64(timestamp))...)
}
