package types

import (
	"fmt"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "liquidstaking"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_liquidstaking"

	// LoansModuleName names the pseudo-account whose unlockings back loans instant unstakes.
	LoansModuleName = "liquidstaking_loans"

	// FeeReceiverModuleName is the default protocol fee receiver.
	FeeReceiverModuleName = "liquidstaking_fees"

	SubAccountUnlocking = "liquidstaking-unlocking"

	SubAccountReserves = "liquidstaking-reserves"

	// MaxUnlockingChunks bounds both delegate ledgers and depositor unlockings.
	MaxUnlockingChunks = 32
)

var (
	ParamsKey = collections.NewPrefix(0)

	ExchangeRateKey = collections.NewPrefix(1)

	// CurrentEraKey and EraStartBlockKey hold the era state machine
	CurrentEraKey    = collections.NewPrefix(2)
	EraStartBlockKey = collections.NewPrefix(3)
	IsMatchedKey     = collections.NewPrefix(4)

	MatchingPoolKey  = collections.NewPrefix(5)
	TotalReservesKey = collections.NewPrefix(6)

	// StakingLedgersKey is the prefix for delegate ledgers keyed by derivative index
	StakingLedgersKey = collections.NewPrefix(7)
	IsUpdatedKey      = collections.NewPrefix(8)

	UnlockingsKey          = collections.NewPrefix(9)
	FastUnstakeRequestsKey = collections.NewPrefix(10)

	// RemoteRequestsKey is the prefix for pending remote requests keyed by correlation id
	RemoteRequestsKey = collections.NewPrefix(11)

	ValidationDataKey = collections.NewPrefix(12)
)

// Keys of the remote staking state that external proofs are checked against.
const (
	RemoteStakingStoreKey = "staking"
	RemoteCurrentEraKey   = "current_era"
)

func RemoteStakingLedgerKey(index uint16) string {
	return fmt.Sprintf("ledger/%d", index)
}

// ModuleAddress is the pool account holding staked base asset, reserves and incentives.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}

func LoansAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(LoansModuleName)
}

// DelegateAddress is the identity of the remote delegate account behind a derivative index.
func DelegateAddress(index uint16) sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("%s/delegate/%d", ModuleName, index))
}
