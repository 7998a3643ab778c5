package keeper

import (
	errorsmod "cosmossdk.io/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tkernell/rng/x/autopay/types"
)

// NewQuerier returns the legacy querier for the autopay module.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case types.QueryParams:
			return queryParams(ctx, k, legacyQuerierCdc)
		case types.QueryCurrentTip:
			return queryCurrentTip(ctx, req, k, legacyQuerierCdc)
		case types.QueryPastTips:
			return queryPastTips(ctx, req, k, legacyQuerierCdc)
		case types.QueryTipCount:
			return queryTipCount(ctx, req, k, legacyQuerierCdc)
		case types.QueryDataFeed:
			return queryDataFeed(ctx, req, k, legacyQuerierCdc)
		case types.QueryDataFeeds:
			return queryDataFeeds(ctx, req, k, legacyQuerierCdc)
		case types.QueryFeedClaimed:
			return queryFeedClaimed(ctx, req, k, legacyQuerierCdc)
		default:
			return nil, errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
	}
}

func queryParams(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	params := k.GetParams(ctx)

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, params)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryCurrentTip(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryTipsParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	tip := k.GetCurrentTip(ctx, params.QueryId, params.Denom)

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, tip)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryPastTips(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryTipsParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	tips := k.GetTips(ctx, params.QueryId, params.Denom)

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, tips)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryTipCount(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryTipsParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	count := k.GetTipCount(ctx, params.QueryId, params.Denom)

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, count)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryDataFeed(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryDataFeedParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	feed, found := k.GetFeed(ctx, params.QueryId, params.FeedId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrFeedNotFound, "feed %X", params.FeedId)
	}

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, types.DataFeedResponse{FeedId: params.FeedId, Feed: feed})
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryDataFeeds(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryDataFeedsParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	feeds := k.GetQueryFeeds(ctx, params.QueryId)

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, feeds)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryFeedClaimed(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryFeedClaimedParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}

	claimed := k.IsFeedTimestampClaimed(ctx, params.FeedId, params.Timestamp)

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, claimed)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}
