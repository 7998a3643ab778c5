package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the contract required for account APIs.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the contract needed for moving tips and rewards between
// tippers, the module account and claimants.
type BankKeeper interface {
	GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromModuleToModule(ctx sdk.Context, senderModule, recipientModule string, amt sdk.Coins) error
}

// OracleKeeper is the append-only oracle record the settlement engine settles
// against. The autopay module never writes to it.
type OracleKeeper interface {
	// RetrieveValue returns the value reported at exactly the given timestamp,
	// or nil if none was reported.
	RetrieveValue(ctx sdk.Context, queryId []byte, timestamp int64) []byte
	// ValueTimestampBefore returns the most recent report strictly before the
	// given timestamp.
	ValueTimestampBefore(ctx sdk.Context, queryId []byte, timestamp int64) (found bool, value []byte, reportTs int64)
	// ReporterAt returns the address of the reporter for (queryId, timestamp),
	// or the empty string if no report exists there.
	ReporterAt(ctx sdk.Context, queryId []byte, timestamp int64) string
}
