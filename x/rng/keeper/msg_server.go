package keeper

import (
	"context"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tkernell/rng/x/rng/types"
)

// MsgServer implementation
var _ types.MsgServer = &Keeper{}

// RequestRandomness implements types.MsgServer.
func (k Keeper) RequestRandomness(goCtx context.Context, msg *types.MsgRequestRandomness) (*types.MsgRequestRandomnessResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, err
	}

	id, queryId, err := k.CreateRequest(ctx, creator, msg.Denom, msg.SeedReward, msg.OracleTip, msg.SeedData)
	if err != nil {
		return nil, err
	}

	request, _ := k.GetRequest(ctx, id)

	k.Logger(ctx).Info("randomness requested",
		"request_id", id,
		"query_id", fmt.Sprintf("%X", queryId),
		"creator", msg.Creator,
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRandomnessRequested,
			sdk.NewAttribute(types.AttributeKeyRequestId, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyQueryId, fmt.Sprintf("%X", queryId)),
			sdk.NewAttribute(types.AttributeKeyCreator, msg.Creator),
			sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.SeedReward.String()),
			sdk.NewAttribute(types.AttributeKeyDeadline, strconv.FormatInt(request.Deadline, 10)),
		),
	)

	return &types.MsgRequestRandomnessResponse{RequestId: id, QueryId: queryId}, nil
}

// ContributeSeed implements types.MsgServer.
func (k Keeper) ContributeSeed(goCtx context.Context, msg *types.MsgContributeSeed) (*types.MsgContributeSeedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	contributor, err := sdk.AccAddressFromBech32(msg.Contributor)
	if err != nil {
		return nil, err
	}

	if err := k.Contribute(ctx, contributor, msg.RequestId, msg.Data); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSeedContributed,
			sdk.NewAttribute(types.AttributeKeyRequestId, strconv.FormatUint(msg.RequestId, 10)),
			sdk.NewAttribute(types.AttributeKeyContributor, msg.Contributor),
		),
	)

	return &types.MsgContributeSeedResponse{}, nil
}

// ClaimSeedReward implements types.MsgServer.
func (k Keeper) ClaimSeedReward(goCtx context.Context, msg *types.MsgClaimSeedReward) (*types.MsgClaimSeedRewardResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimer, err := sdk.AccAddressFromBech32(msg.Claimer)
	if err != nil {
		return nil, err
	}

	amount, err := k.ClaimReward(ctx, claimer, msg.RequestId)
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("seed reward claimed",
		"request_id", msg.RequestId,
		"claimer", msg.Claimer,
		"amount", amount.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSeedRewardClaimed,
			sdk.NewAttribute(types.AttributeKeyRequestId, strconv.FormatUint(msg.RequestId, 10)),
			sdk.NewAttribute(types.AttributeKeyClaimer, msg.Claimer),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return &types.MsgClaimSeedRewardResponse{Amount: amount}, nil
}
