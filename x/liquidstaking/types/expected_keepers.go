package types

//go:generate mockgen -source=expected_keepers.go -destination=../../../testutil/keeper/expected_keepers_mocks.go -package=keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the balance views the module needs from the token ledger.
type BankKeeper interface {
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
}

// BookkeepingBankKeeper moves, mints and burns tokens with an audit memo.
type BookkeepingBankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
	// For logging transactions to tracking accounts, like unlocking schedules
	LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string)
}

// RemoteTransport submits operations to the remote staking system. Submit
// returns immediately with the correlation id the confirmation will carry.
type RemoteTransport interface {
	Submit(ctx context.Context, request RemoteRequest) (uint64, error)
}

// BlockHeightOracle reports the remote system's block height and the latest
// admitted snapshot of its state.
type BlockHeightOracle interface {
	CurrentHeight(ctx context.Context) uint64
	LatestSnapshot(ctx context.Context) (ValidationSnapshot, bool)
}

// ProofVerifier admits externally asserted facts about the remote state.
type ProofVerifier interface {
	VerifyMembership(root []byte, storeKey, key string, value []byte, proof []byte) error
}

// MarketInfo describes a lending market.
type MarketInfo struct {
	CollateralFactor math.LegacyDec
}

// LoansKeeper is the collateralized-lending collaborator used by the
// loans instant-unstake path.
type LoansKeeper interface {
	GetMarketInfo(ctx context.Context, denom string) (MarketInfo, error)
	GetCurrentBorrowBalance(ctx context.Context, borrower sdk.AccAddress, denom string) (math.Int, error)
	Mint(ctx context.Context, supplier sdk.AccAddress, denom string, amount math.Int) error
	CollateralAsset(ctx context.Context, supplier sdk.AccAddress, denom string, enable bool) error
	Borrow(ctx context.Context, borrower sdk.AccAddress, denom string, amount math.Int) error
	RepayBorrow(ctx context.Context, borrower sdk.AccAddress, denom string, amount math.Int) error
	Redeem(ctx context.Context, supplier sdk.AccAddress, denom string, amount math.Int) error
}

// ValidationSnapshot is an admitted view of the remote chain state.
type ValidationSnapshot struct {
	Height    uint64 `json:"height"`
	StateRoot []byte `json:"state_root"`
}
