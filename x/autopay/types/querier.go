package types

// query endpoints supported by the autopay legacy querier
const (
	QueryParams      = "params"
	QueryCurrentTip  = "current-tip"
	QueryPastTips    = "past-tips"
	QueryTipCount    = "tip-count"
	QueryDataFeed    = "data-feed"
	QueryDataFeeds   = "data-feeds"
	QueryFeedClaimed = "feed-claimed"
)

// QueryTipsParams is the request for the current-tip and past-tips queries.
type QueryTipsParams struct {
	QueryId []byte `json:"query_id"`
	Denom   string `json:"denom"`
}

// NewQueryTipsParams creates a new QueryTipsParams instance
func NewQueryTipsParams(queryId []byte, denom string) QueryTipsParams {
	return QueryTipsParams{QueryId: queryId, Denom: denom}
}

// QueryDataFeedParams is the request for the data-feed query.
type QueryDataFeedParams struct {
	QueryId []byte `json:"query_id"`
	FeedId  []byte `json:"feed_id"`
}

// NewQueryDataFeedParams creates a new QueryDataFeedParams instance
func NewQueryDataFeedParams(queryId, feedId []byte) QueryDataFeedParams {
	return QueryDataFeedParams{QueryId: queryId, FeedId: feedId}
}

// QueryDataFeedsParams is the request for the data-feeds query.
type QueryDataFeedsParams struct {
	QueryId []byte `json:"query_id"`
}

// NewQueryDataFeedsParams creates a new QueryDataFeedsParams instance
func NewQueryDataFeedsParams(queryId []byte) QueryDataFeedsParams {
	return QueryDataFeedsParams{QueryId: queryId}
}

// QueryFeedClaimedParams is the request for the feed-claimed query.
type QueryFeedClaimedParams struct {
	FeedId    []byte `json:"feed_id"`
	Timestamp int64  `json:"timestamp"`
}

// NewQueryFeedClaimedParams creates a new QueryFeedClaimedParams instance
func NewQueryFeedClaimedParams(feedId []byte, timestamp int64) QueryFeedClaimedParams {
	return QueryFeedClaimedParams{FeedId: feedId, Timestamp: timestamp}
}

// DataFeedResponse pairs a feed id with its configuration.
type DataFeedResponse struct {
	FeedId []byte `json:"feed_id"`
	Feed   Feed   `json:"feed"`
}
