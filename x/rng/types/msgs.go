package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"sigs.k8s.io/yaml"
)

// rng message types
const (
	TypeMsgRequestRandomness = ModuleName + "_request"
	TypeMsgContributeSeed    = ModuleName + "_contribute_seed"
	TypeMsgClaimSeedReward   = ModuleName + "_claim_seed_reward"
)

// MsgServer defines the message handling surface of the rng module.
type MsgServer interface {
	RequestRandomness(ctx context.Context, msg *MsgRequestRandomness) (*MsgRequestRandomnessResponse, error)
	ContributeSeed(ctx context.Context, msg *MsgContributeSeed) (*MsgContributeSeedResponse, error)
	ClaimSeedReward(ctx context.Context, msg *MsgClaimSeedReward) (*MsgClaimSeedRewardResponse, error)
}

// MsgRequestRandomnessResponse carries the allocated request id and the oracle
// query id the finalized number will be reported under.
type MsgRequestRandomnessResponse struct {
	RequestId uint64 `json:"request_id"`
	QueryId   []byte `json:"query_id"`
}

// MsgContributeSeedResponse is the response of a successful MsgContributeSeed.
type MsgContributeSeedResponse struct{}

// MsgClaimSeedRewardResponse carries the amount paid out.
type MsgClaimSeedRewardResponse struct {
	Amount math.Int `json:"amount"`
}

var _ sdk.Msg = &MsgRequestRandomness{}

// MsgRequestRandomness opens a new seed aggregation round. SeedReward funds
// the contribution incentive and OracleTip is forwarded to the settlement
// engine to pay the reporter of the finalized number.
type MsgRequestRandomness struct {
	Creator    string   `json:"creator"`
	Denom      string   `json:"denom"`
	SeedReward math.Int `json:"seed_reward"`
	OracleTip  math.Int `json:"oracle_tip"`
	SeedData   []byte   `json:"seed_data"`
}

// NewMsgRequestRandomness - construct a msg to open a randomness request.
func NewMsgRequestRandomness(creator sdk.AccAddress, denom string, seedReward, oracleTip math.Int, seedData []byte) *MsgRequestRandomness {
	return &MsgRequestRandomness{
		Creator:    creator.String(),
		Denom:      denom,
		SeedReward: seedReward,
		OracleTip:  oracleTip,
		SeedData:   seedData,
	}
}

// Route Implements Msg.
func (msg MsgRequestRandomness) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgRequestRandomness) Type() string { return TypeMsgRequestRandomness }

// ValidateBasic Implements Msg.
func (msg MsgRequestRandomness) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " creator address, %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " denom %s", err)
	}
	if msg.SeedReward.IsNil() || !msg.SeedReward.IsPositive() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " seed reward must be positive")
	}
	if msg.OracleTip.IsNil() || !msg.OracleTip.IsPositive() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " oracle tip must be positive")
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgRequestRandomness) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgRequestRandomness) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

var _ sdk.Msg = &MsgContributeSeed{}

// MsgContributeSeed folds the sender's data into an open request's seed.
type MsgContributeSeed struct {
	Contributor string `json:"contributor"`
	RequestId   uint64 `json:"request_id"`
	Data        []byte `json:"data"`
}

// NewMsgContributeSeed - construct a msg to contribute seed data.
func NewMsgContributeSeed(contributor sdk.AccAddress, requestId uint64, data []byte) *MsgContributeSeed {
	return &MsgContributeSeed{
		Contributor: contributor.String(),
		RequestId:   requestId,
		Data:        data,
	}
}

// Route Implements Msg.
func (msg MsgContributeSeed) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgContributeSeed) Type() string { return TypeMsgContributeSeed }

// ValidateBasic Implements Msg.
func (msg MsgContributeSeed) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Contributor); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " contributor address, %s", err)
	}
	if msg.RequestId == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, " request id must be positive")
	}
	if len(msg.Data) == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, " empty seed data")
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgContributeSeed) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgContributeSeed) GetSigners() []sdk.AccAddress {
	contributor, _ := sdk.AccAddressFromBech32(msg.Contributor)
	return []sdk.AccAddress{contributor}
}

var _ sdk.Msg = &MsgClaimSeedReward{}

// MsgClaimSeedReward claims a closed request's seed reward. Only the last
// contributor is eligible.
type MsgClaimSeedReward struct {
	Claimer   string `json:"claimer"`
	RequestId uint64 `json:"request_id"`
}

// NewMsgClaimSeedReward - construct a msg to claim a seed reward.
func NewMsgClaimSeedReward(claimer sdk.AccAddress, requestId uint64) *MsgClaimSeedReward {
	return &MsgClaimSeedReward{
		Claimer:   claimer.String(),
		RequestId: requestId,
	}
}

// Route Implements Msg.
func (msg MsgClaimSeedReward) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgClaimSeedReward) Type() string { return TypeMsgClaimSeedReward }

// ValidateBasic Implements Msg.
func (msg MsgClaimSeedReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " claimer address, %s", err)
	}
	if msg.RequestId == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, " request id must be positive")
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgClaimSeedReward) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgClaimSeedReward) GetSigners() []sdk.AccAddress {
	claimer, _ := sdk.AccAddressFromBech32(msg.Claimer)
	return []sdk.AccAddress{claimer}
}

// proto.Message implementations for the hand-written message types.

func (msg *MsgRequestRandomness) Reset()         { *msg = MsgRequestRandomness{} }
func (msg *MsgRequestRandomness) ProtoMessage()  {}
func (msg *MsgRequestRandomness) String() string { return yamlString(msg) }

func (msg *MsgContributeSeed) Reset()         { *msg = MsgContributeSeed{} }
func (msg *MsgContributeSeed) ProtoMessage()  {}
func (msg *MsgContributeSeed) String() string { return yamlString(msg) }

func (msg *MsgClaimSeedReward) Reset()         { *msg = MsgClaimSeedReward{} }
func (msg *MsgClaimSeedReward) ProtoMessage()  {}
func (msg *MsgClaimSeedReward) String() string { return yamlString(msg) }

func yamlString(v interface{}) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(out)
}
