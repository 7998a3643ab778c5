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

// RegisterLegacyAminoCodec registers the rng message types on the given codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRequestRandomness{}, "rng/MsgRequestRandomness", nil)
	cdc.RegisterConcrete(&MsgContributeSeed{}, "rng/MsgContributeSeed", nil)
	cdc.RegisterConcrete(&MsgClaimSeedReward{}, "rng/MsgClaimSeedReward", nil)
}
