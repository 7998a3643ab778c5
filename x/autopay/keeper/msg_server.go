package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tkernell/rng/x/autopay/types"
)

// MsgServer implementation
var _ types.MsgServer = &Keeper{}

// Tip implements types.MsgServer.
func (k Keeper) Tip(goCtx context.Context, msg *types.MsgTip) (*types.MsgTipResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	tipper, err := sdk.AccAddressFromBech32(msg.Tipper)
	if err != nil {
		return nil, err
	}

	if err := k.AddTip(ctx, tipper, msg.Denom, msg.QueryId, msg.Amount, msg.QueryData); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTipAdded,
			sdk.NewAttribute(types.AttributeKeyTipper, msg.Tipper),
			sdk.NewAttribute(types.AttributeKeyQueryId, fmt.Sprintf("%X", msg.QueryId)),
			sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		),
	)

	return &types.MsgTipResponse{}, nil
}

// ClaimOneTimeTip implements types.MsgServer.
func (k Keeper) ClaimOneTimeTip(goCtx context.Context, msg *types.MsgClaimOneTimeTip) (*types.MsgClaimOneTimeTipResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimer, err := sdk.AccAddressFromBech32(msg.Claimer)
	if err != nil {
		return nil, err
	}

	total, err := k.ClaimOneTimeTips(ctx, claimer, msg.Denom, msg.QueryId, msg.Timestamps)
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("one-time tip claimed",
		"query_id", fmt.Sprintf("%X", msg.QueryId),
		"claimer", msg.Claimer,
		"amount", total.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOneTimeTipClaimed,
			sdk.NewAttribute(types.AttributeKeyQueryId, fmt.Sprintf("%X", msg.QueryId)),
			sdk.NewAttribute(types.AttributeKeyReporter, msg.Claimer),
			sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, total.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamps, fmt.Sprint(msg.Timestamps)),
		),
	)

	return &types.MsgClaimOneTimeTipResponse{Amount: total}, nil
}

// SetupFeed implements types.MsgServer.
func (k Keeper) SetupFeed(goCtx context.Context, msg *types.MsgSetupFeed) (*types.MsgSetupFeedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	feedId, err := k.CreateDataFeed(ctx, msg.Denom, msg.QueryId, msg.Reward, msg.StartTime, msg.Interval, msg.Window, msg.QueryData)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNewDataFeed,
			sdk.NewAttribute(types.AttributeKeyQueryId, fmt.Sprintf("%X", msg.QueryId)),
			sdk.NewAttribute(types.AttributeKeyFeedId, fmt.Sprintf("%X", feedId)),
			sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
		),
	)

	return &types.MsgSetupFeedResponse{FeedId: feedId}, nil
}

// FundFeed implements types.MsgServer.
func (k Keeper) FundFeed(goCtx context.Context, msg *types.MsgFundFeed) (*types.MsgFundFeedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	funder, err := sdk.AccAddressFromBech32(msg.Funder)
	if err != nil {
		return nil, err
	}

	if err := k.FundDataFeed(ctx, funder, msg.FeedId, msg.QueryId, msg.Amount); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDataFeedFunded,
			sdk.NewAttribute(types.AttributeKeyFeedId, fmt.Sprintf("%X", msg.FeedId)),
			sdk.NewAttribute(types.AttributeKeyFunder, msg.Funder),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		),
	)

	return &types.MsgFundFeedResponse{}, nil
}

// ClaimFeedTip implements types.MsgServer.
func (k Keeper) ClaimFeedTip(goCtx context.Context, msg *types.MsgClaimFeedTip) (*types.MsgClaimFeedTipResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	total, err := k.ClaimFeedRewards(ctx, msg.Reporter, msg.FeedId, msg.QueryId, msg.Timestamps)
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("feed tip claimed",
		"feed_id", fmt.Sprintf("%X", msg.FeedId),
		"reporter", msg.Reporter,
		"amount", total.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTipClaimed,
			sdk.NewAttribute(types.AttributeKeyFeedId, fmt.Sprintf("%X", msg.FeedId)),
			sdk.NewAttribute(types.AttributeKeyReporter, msg.Reporter),
			sdk.NewAttribute(types.AttributeKeyAmount, total.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamps, fmt.Sprint(msg.Timestamps)),
		),
	)

	return &types.MsgClaimFeedTipResponse{Amount: total}, nil
}
