package types

// rng module event types
const (
	// event types
	EventTypeRandomnessRequested = ModuleName + "_request"
	EventTypeSeedContributed     = ModuleName + "_contribute"
	EventTypeSeedRewardClaimed   = ModuleName + "_claim"

	// event attributes
	AttributeKeyRequestId   = "request_id"
	AttributeKeyQueryId     = "query_id"
	AttributeKeyCreator     = "creator"
	AttributeKeyContributor = "contributor"
	AttributeKeyClaimer     = "claimer"
	AttributeKeyDenom       = "denom"
	AttributeKeyAmount      = "amount"
	AttributeKeyDeadline    = "deadline"
)
