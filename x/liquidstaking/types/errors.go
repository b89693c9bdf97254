package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/liquidstaking module sentinel errors
var (
	ErrInvalidExchangeRate     = sdkerrors.Register(ModuleName, 1100, "exchange rate is invalid")
	ErrStakeTooSmall           = sdkerrors.Register(ModuleName, 1101, "stake amount is too small")
	ErrUnstakeTooSmall         = sdkerrors.Register(ModuleName, 1102, "unstake amount is too small")
	ErrInvalidLiquidCurrency   = sdkerrors.Register(ModuleName, 1103, "liquid currency hasn't been set")
	ErrInvalidStakingCurrency  = sdkerrors.Register(ModuleName, 1104, "staking currency hasn't been set")
	ErrInvalidDerivativeIndex  = sdkerrors.Register(ModuleName, 1105, "invalid derivative index")
	ErrInvalidStakingLedger    = sdkerrors.Register(ModuleName, 1106, "invalid staking ledger")
	ErrCapExceeded             = sdkerrors.Register(ModuleName, 1107, "exceeded liquid currency's market cap")
	ErrInvalidCap              = sdkerrors.Register(ModuleName, 1108, "invalid market cap")
	ErrInvalidFactor           = sdkerrors.Register(ModuleName, 1109, "the factor should be bigger than 0% and smaller than 100%")
	ErrNothingToClaim          = sdkerrors.Register(ModuleName, 1110, "nothing to claim yet")
	ErrNotBonded               = sdkerrors.Register(ModuleName, 1111, "stash wasn't bonded yet")
	ErrAlreadyBonded           = sdkerrors.Register(ModuleName, 1112, "stash has already been bonded")
	ErrNoMoreChunks            = sdkerrors.Register(ModuleName, 1113, "can not schedule more unlock chunks")
	ErrStakingLedgerLocked     = sdkerrors.Register(ModuleName, 1114, "staking ledger is locked due to mutation in notification_received")
	ErrNotWithdrawn            = sdkerrors.Register(ModuleName, 1115, "not withdrawn unbonded yet")
	ErrInsufficientBond        = sdkerrors.Register(ModuleName, 1116, "cannot have a nominator role with value less than the minimum defined")
	ErrInvalidProof            = sdkerrors.Register(ModuleName, 1117, "the merkle proof is invalid")
	ErrNoUnlockings            = sdkerrors.Register(ModuleName, 1118, "no unlocking items found")
	ErrInvalidCommissionRate   = sdkerrors.Register(ModuleName, 1119, "invalid commission rate")
	ErrArithmetic              = sdkerrors.Register(ModuleName, 1120, "arithmetic overflow or underflow")
	ErrInsufficientFunds       = sdkerrors.Register(ModuleName, 1121, "insufficient funds")
	ErrTransportCongested      = sdkerrors.Register(ModuleName, 1122, "remote transport is congested")
	ErrLoansUnavailable        = sdkerrors.Register(ModuleName, 1123, "lending market is not configured")
	ErrNoValidationSnapshot    = sdkerrors.Register(ModuleName, 1124, "no admitted external state snapshot")
	ErrUnknownRequestKind      = sdkerrors.Register(ModuleName, 1125, "unknown remote request kind")
	ErrInvalidUnstakeProvider  = sdkerrors.Register(ModuleName, 1126, "invalid unstake provider")
	ErrInsufficientReserves    = sdkerrors.Register(ModuleName, 1127, "insufficient reserves")
	ErrInvalidDistributionName = sdkerrors.Register(ModuleName, 1128, "unknown distribution strategy")
	ErrInvalidSigner           = sdkerrors.Register(ModuleName, 1129, "expected authority account as only signer for admin message")
	ErrOracleBehind            = sdkerrors.Register(ModuleName, 1130, "remote height is behind the era start")
)
