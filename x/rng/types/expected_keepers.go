package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the contract required for account APIs.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the contract needed for escrowing and paying out seed
// rewards.
type BankKeeper interface {
	GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// SettlementKeeper forwards the oracle tip of a randomness request to the
// settlement engine, so that reporting the finalized number is incentivized.
type SettlementKeeper interface {
	AddTip(ctx sdk.Context, tipper sdk.AccAddress, denom string, queryId []byte, amount math.Int, queryData []byte) error
}
