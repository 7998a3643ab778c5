package types

// query endpoints supported by the rng legacy querier
const (
	QueryParams        = "params"
	QueryRequest       = "request"
	QueryRequests      = "requests"
	QueryRewardClaimed = "reward-claimed"
)

// QueryRequestParams is the request for the request and reward-claimed queries.
type QueryRequestParams struct {
	RequestId uint64 `json:"request_id"`
}

// NewQueryRequestParams creates a new QueryRequestParams instance
func NewQueryRequestParams(requestId uint64) QueryRequestParams {
	return QueryRequestParams{RequestId: requestId}
}
