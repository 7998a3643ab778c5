package rng

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tkernell/rng/x/rng/types"
)

// NewHandler creates a new handler for rng messages
func NewHandler(msgServer types.MsgServer) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case *types.MsgRequestRandomness:
			res, err := msgServer.RequestRandomness(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		case *types.MsgContributeSeed:
			res, err := msgServer.ContributeSeed(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		case *types.MsgClaimSeedReward:
			res, err := msgServer.ClaimSeedReward(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		default:
			err := errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
			return nil, err
		}
	}
}

// wrapResult packs an amino-encoded msg response and the emitted events into
// an sdk.Result.
func wrapResult(ctx sdk.Context, res interface{}, err error) (*sdk.Result, error) {
	if err != nil {
		return nil, err
	}

	data, err := types.ModuleCdc.MarshalJSON(res)
	if err != nil {
		return nil, err
	}

	return &sdk.Result{
		Data:   data,
		Events: ctx.EventManager().ABCIEvents(),
	}, nil
}
