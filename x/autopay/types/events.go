package types

// autopay module event types
const (
	// event types
	EventTypeTipAdded          = ModuleName + "_tip_added"
	EventTypeOneTimeTipClaimed = ModuleName + "_one_time_tip_claimed"
	EventTypeNewDataFeed       = ModuleName + "_new_data_feed"
	EventTypeDataFeedFunded    = ModuleName + "_data_feed_funded"
	EventTypeTipClaimed        = ModuleName + "_tip_claimed"

	// event attributes
	AttributeKeyQueryId    = "query_id"
	AttributeKeyFeedId     = "feed_id"
	AttributeKeyTipper     = "tipper"
	AttributeKeyFunder     = "funder"
	AttributeKeyReporter   = "reporter"
	AttributeKeyDenom      = "denom"
	AttributeKeyAmount     = "amount"
	AttributeKeyTimestamps = "timestamps"
)
