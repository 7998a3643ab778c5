package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc is the module codec. State and message types are plain Go structs
// serialized with legacy amino.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
}

// RegisterLegacyAminoCodec registers the autopay message types on the given codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgTip{}, "autopay/MsgTip", nil)
	cdc.RegisterConcrete(&MsgClaimOneTimeTip{}, "autopay/MsgClaimOneTimeTip", nil)
	cdc.RegisterConcrete(&MsgSetupFeed{}, "autopay/MsgSetupFeed", nil)
	cdc.RegisterConcrete(&MsgFundFeed{}, "autopay/MsgFundFeed", nil)
	cdc.RegisterConcrete(&MsgClaimFeedTip{}, "autopay/MsgClaimFeedTip", nil)
}
