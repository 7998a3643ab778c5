package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrQueryIdMismatch       = errorsmod.Register(ModuleName, 2, "query id must be the hash of the query data")
	ErrNoTips                = errorsmod.Register(ModuleName, 3, "no tips submitted for this query")
	ErrTooEarly              = errorsmod.Register(ModuleName, 4, "buffer time has not passed")
	ErrTooStale              = errorsmod.Register(ModuleName, 5, "timestamp too old to claim")
	ErrReporterMismatch      = errorsmod.Register(ModuleName, 6, "claimed reporter is not the reporter for this timestamp")
	ErrNoValueReported       = errorsmod.Register(ModuleName, 7, "no value reported at this timestamp")
	ErrEarnedByPriorReport   = errorsmod.Register(ModuleName, 8, "tip earned by a previous report")
	ErrNotEligible           = errorsmod.Register(ModuleName, 9, "timestamp not eligible for tip")
	ErrAlreadyClaimed        = errorsmod.Register(ModuleName, 10, "tip already claimed")
	ErrFeedAlreadyConfigured = errorsmod.Register(ModuleName, 11, "feed with these parameters already configured")
	ErrInvalidReward         = errorsmod.Register(ModuleName, 12, "feed reward must be greater than zero")
	ErrInvalidWindow         = errorsmod.Register(ModuleName, 13, "invalid feed window")
	ErrFeedNotFound          = errorsmod.Register(ModuleName, 14, "no feed configured with this id")
	ErrInsufficientBalance   = errorsmod.Register(ModuleName, 15, "insufficient feed balance")
	ErrOutsideWindow         = errorsmod.Register(ModuleName, 16, "timestamp not within a reward window")
	ErrNotFirstInWindow      = errorsmod.Register(ModuleName, 17, "not the first report within its window")
	ErrTransferRejected      = errorsmod.Register(ModuleName, 18, "token transfer rejected")
)
