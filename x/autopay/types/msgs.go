package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"sigs.k8s.io/yaml"

	rngtypes "github.com/tkernell/rng/types"
)

// autopay message types
const (
	TypeMsgTip             = ModuleName + "_tip"
	TypeMsgClaimOneTimeTip = ModuleName + "_claim_one_time_tip"
	TypeMsgSetupFeed       = ModuleName + "_setup_feed"
	TypeMsgFundFeed        = ModuleName + "_fund_feed"
	TypeMsgClaimFeedTip    = ModuleName + "_claim_feed_tip"
)

// MsgServer defines the message handling surface of the autopay module.
type MsgServer interface {
	Tip(ctx context.Context, msg *MsgTip) (*MsgTipResponse, error)
	ClaimOneTimeTip(ctx context.Context, msg *MsgClaimOneTimeTip) (*MsgClaimOneTimeTipResponse, error)
	SetupFeed(ctx context.Context, msg *MsgSetupFeed) (*MsgSetupFeedResponse, error)
	FundFeed(ctx context.Context, msg *MsgFundFeed) (*MsgFundFeedResponse, error)
	ClaimFeedTip(ctx context.Context, msg *MsgClaimFeedTip) (*MsgClaimFeedTipResponse, error)
}

// MsgTipResponse is the response of a successful MsgTip.
type MsgTipResponse struct{}

// MsgClaimOneTimeTipResponse carries the total amount claimed, before the fee
// deduction.
type MsgClaimOneTimeTipResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgSetupFeedResponse carries the derived feed id.
type MsgSetupFeedResponse struct {
	FeedId []byte `json:"feed_id"`
}

// MsgFundFeedResponse is the response of a successful MsgFundFeed.
type MsgFundFeedResponse struct{}

// MsgClaimFeedTipResponse carries the total amount claimed, before the fee
// deduction.
type MsgClaimFeedTipResponse struct {
	Amount math.Int `json:"amount"`
}

var _ sdk.Msg = &MsgTip{}

// MsgTip adds a one-time tip to the ledger of (query id, denom).
type MsgTip struct {
	Tipper    string   `json:"tipper"`
	Denom     string   `json:"denom"`
	QueryId   []byte   `json:"query_id"`
	Amount    math.Int `json:"amount"`
	QueryData []byte   `json:"query_data"`
}

// NewMsgTip - construct a msg to submit a one-time tip.
func NewMsgTip(tipper sdk.AccAddress, denom string, queryId []byte, amount math.Int, queryData []byte) *MsgTip {
	return &MsgTip{
		Tipper:    tipper.String(),
		Denom:     denom,
		QueryId:   queryId,
		Amount:    amount,
		QueryData: queryData,
	}
}

// Route Implements Msg.
func (msg MsgTip) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgTip) Type() string { return TypeMsgTip }

// ValidateBasic Implements Msg.
func (msg MsgTip) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Tipper); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " tipper address, %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " denom %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " tip amount must be positive")
	}
	if !rngtypes.ValidQueryID(msg.QueryId, msg.QueryData) {
		return errorsmod.Wrapf(ErrQueryIdMismatch, " id %X", msg.QueryId)
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgTip) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgTip) GetSigners() []sdk.AccAddress {
	tipper, _ := sdk.AccAddressFromBech32(msg.Tipper)
	return []sdk.AccAddress{tipper}
}

var _ sdk.Msg = &MsgClaimOneTimeTip{}

// MsgClaimOneTimeTip claims the one-time tips earned by the sender's reports
// at the given timestamps.
type MsgClaimOneTimeTip struct {
	Claimer    string  `json:"claimer"`
	Denom      string  `json:"denom"`
	QueryId    []byte  `json:"query_id"`
	Timestamps []int64 `json:"timestamps"`
}

// NewMsgClaimOneTimeTip - construct a msg to claim one-time tips.
func NewMsgClaimOneTimeTip(claimer sdk.AccAddress, denom string, queryId []byte, timestamps []int64) *MsgClaimOneTimeTip {
	return &MsgClaimOneTimeTip{
		Claimer:    claimer.String(),
		Denom:      denom,
		QueryId:    queryId,
		Timestamps: timestamps,
	}
}

// Route Implements Msg.
func (msg MsgClaimOneTimeTip) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgClaimOneTimeTip) Type() string { return TypeMsgClaimOneTimeTip }

// ValidateBasic Implements Msg.
func (msg MsgClaimOneTimeTip) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " claimer address, %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " denom %s", err)
	}
	if len(msg.QueryId) == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, " empty query id")
	}
	if len(msg.Timestamps) == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, " no timestamps provided")
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgClaimOneTimeTip) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgClaimOneTimeTip) GetSigners() []sdk.AccAddress {
	claimer, _ := sdk.AccAddressFromBech32(msg.Claimer)
	return []sdk.AccAddress{claimer}
}

var _ sdk.Msg = &MsgSetupFeed{}

// MsgSetupFeed registers a recurring-payment feed for a query.
type MsgSetupFeed struct {
	Creator   string   `json:"creator"`
	Denom     string   `json:"denom"`
	QueryId   []byte   `json:"query_id"`
	Reward    math.Int `json:"reward"`
	StartTime int64    `json:"start_time"`
	Interval  int64    `json:"interval"`
	Window    int64    `json:"window"`
	QueryData []byte   `json:"query_data"`
}

// NewMsgSetupFeed - construct a msg to register a recurring-payment feed.
func NewMsgSetupFeed(creator sdk.AccAddress, denom string, queryId []byte, reward math.Int, startTime, interval, window int64, queryData []byte) *MsgSetupFeed {
	return &MsgSetupFeed{
		Creator:   creator.String(),
		Denom:     denom,
		QueryId:   queryId,
		Reward:    reward,
		StartTime: startTime,
		Interval:  interval,
		Window:    window,
		QueryData: queryData,
	}
}

// Route Implements Msg.
func (msg MsgSetupFeed) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgSetupFeed) Type() string { return TypeMsgSetupFeed }

// ValidateBasic Implements Msg.
func (msg MsgSetupFeed) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " creator address, %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " denom %s", err)
	}
	if msg.Reward.IsNil() || !msg.Reward.IsPositive() {
		return errorsmod.Wrapf(ErrInvalidReward, " got %s", msg.Reward)
	}
	if msg.Interval <= 0 {
		return errorsmod.Wrapf(ErrInvalidWindow, " interval must be positive")
	}
	if msg.Window <= 0 || msg.Window >= msg.Interval {
		return errorsmod.Wrapf(ErrInvalidWindow, " window %d, interval %d", msg.Window, msg.Interval)
	}
	if !rngtypes.ValidQueryID(msg.QueryId, msg.QueryData) {
		return errorsmod.Wrapf(ErrQueryIdMismatch, " id %X", msg.QueryId)
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgSetupFeed) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgSetupFeed) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

var _ sdk.Msg = &MsgFundFeed{}

// MsgFundFeed adds balance to an existing feed.
type MsgFundFeed struct {
	Funder  string   `json:"funder"`
	FeedId  []byte   `json:"feed_id"`
	QueryId []byte   `json:"query_id"`
	Amount  math.Int `json:"amount"`
}

// NewMsgFundFeed - construct a msg to fund a feed.
func NewMsgFundFeed(funder sdk.AccAddress, feedId, queryId []byte, amount math.Int) *MsgFundFeed {
	return &MsgFundFeed{
		Funder:  funder.String(),
		FeedId:  feedId,
		QueryId: queryId,
		Amount:  amount,
	}
}

// Route Implements Msg.
func (msg MsgFundFeed) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgFundFeed) Type() string { return TypeMsgFundFeed }

// ValidateBasic Implements Msg.
func (msg MsgFundFeed) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Funder); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " funder address, %s", err)
	}
	if len(msg.FeedId) == 0 || len(msg.QueryId) == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, " empty feed or query id")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, " fund amount must be positive")
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgFundFeed) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgFundFeed) GetSigners() []sdk.AccAddress {
	funder, _ := sdk.AccAddressFromBech32(msg.Funder)
	return []sdk.AccAddress{funder}
}

var _ sdk.Msg = &MsgClaimFeedTip{}

// MsgClaimFeedTip claims feed rewards on behalf of a reporter for the given
// timestamps. The reward is paid to the reporter, not the sender.
type MsgClaimFeedTip struct {
	Claimer    string  `json:"claimer"`
	Reporter   string  `json:"reporter"`
	FeedId     []byte  `json:"feed_id"`
	QueryId    []byte  `json:"query_id"`
	Timestamps []int64 `json:"timestamps"`
}

// NewMsgClaimFeedTip - construct a msg to claim recurring feed rewards.
func NewMsgClaimFeedTip(claimer sdk.AccAddress, reporter string, feedId, queryId []byte, timestamps []int64) *MsgClaimFeedTip {
	return &MsgClaimFeedTip{
		Claimer:    claimer.String(),
		Reporter:   reporter,
		FeedId:     feedId,
		QueryId:    queryId,
		Timestamps: timestamps,
	}
}

// Route Implements Msg.
func (msg MsgClaimFeedTip) Route() string { return RouterKey }

// Type Implements Msg.
func (msg MsgClaimFeedTip) Type() string { return TypeMsgClaimFeedTip }

// ValidateBasic Implements Msg.
func (msg MsgClaimFeedTip) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " claimer address, %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Reporter); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, " reporter address, %s", err)
	}
	if len(msg.FeedId) == 0 || len(msg.QueryId) == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, " empty feed or query id")
	}
	if len(msg.Timestamps) == 0 {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, " no timestamps provided")
	}
	return nil
}

// GetSignBytes Implements Msg.
func (msg MsgClaimFeedTip) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners Implements Msg.
func (msg MsgClaimFeedTip) GetSigners() []sdk.AccAddress {
	claimer, _ := sdk.AccAddressFromBech32(msg.Claimer)
	return []sdk.AccAddress{claimer}
}

// proto.Message implementations for the hand-written message types.

func (msg *MsgTip) Reset()         { *msg = MsgTip{} }
func (msg *MsgTip) ProtoMessage()  {}
func (msg *MsgTip) String() string { return yamlString(msg) }

func (msg *MsgClaimOneTimeTip) Reset()         { *msg = MsgClaimOneTimeTip{} }
func (msg *MsgClaimOneTimeTip) ProtoMessage()  {}
func (msg *MsgClaimOneTimeTip) String() string { return yamlString(msg) }

func (msg *MsgSetupFeed) Reset()         { *msg = MsgSetupFeed{} }
func (msg *MsgSetupFeed) ProtoMessage()  {}
func (msg *MsgSetupFeed) String() string { return yamlString(msg) }

func (msg *MsgFundFeed) Reset()         { *msg = MsgFundFeed{} }
func (msg *MsgFundFeed) ProtoMessage()  {}
func (msg *MsgFundFeed) String() string { return yamlString(msg) }

func (msg *MsgClaimFeedTip) Reset()         { *msg = MsgClaimFeedTip{} }
func (msg *MsgClaimFeedTip) ProtoMessage()  {}
func (msg *MsgClaimFeedTip) String() string { return yamlString(msg) }

func yamlString(v interface{}) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(out)
}
