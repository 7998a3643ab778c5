package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrRequestNotFound    = errorsmod.Register(ModuleName, 2, "no randomness request with this id")
	ErrWindowClosed       = errorsmod.Register(ModuleName, 3, "contribution window has closed")
	ErrWindowOpen         = errorsmod.Register(ModuleName, 4, "contribution window is still open")
	ErrAlreadyClaimed     = errorsmod.Register(ModuleName, 5, "seed reward already claimed")
	ErrNotLastContributor = errorsmod.Register(ModuleName, 6, "only the last contributor may claim the seed reward")
	ErrTransferRejected   = errorsmod.Register(ModuleName, 7, "token transfer rejected")
)
