package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type DelegateLedger struct {
	Index  uint16        `json:"index"`
	Ledger StakingLedger `json:"ledger"`
}

type AccountUnlockings struct {
	Account    string       `json:"account"`
	Unlockings UnlockChunks `json:"unlockings"`
}

type FastUnstakeRequest struct {
	Account string   `json:"account"`
	Amount  math.Int `json:"amount"`
}

type GenesisState struct {
	Params              Params               `json:"params"`
	ExchangeRate        math.LegacyDec       `json:"exchange_rate"`
	CurrentEra          uint32               `json:"current_era"`
	EraStartBlock       uint64               `json:"era_start_block"`
	IsMatched           bool                 `json:"is_matched"`
	MatchingPool        MatchingLedger       `json:"matching_pool"`
	TotalReserves       math.Int             `json:"total_reserves"`
	StakingLedgers      []DelegateLedger     `json:"staking_ledgers"`
	Unlockings          []AccountUnlockings  `json:"unlockings"`
	FastUnstakeRequests []FastUnstakeRequest `json:"fast_unstake_requests"`
	PendingRequests     []PendingRequest     `json:"pending_requests"`
	ValidationData      *ValidationSnapshot  `json:"validation_data,omitempty"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:              DefaultParams(),
		ExchangeRate:        DefaultExchangeRate(),
		MatchingPool:        NewMatchingLedger(),
		TotalReserves:       math.ZeroInt(),
		StakingLedgers:      []DelegateLedger{},
		Unlockings:          []AccountUnlockings{},
		FastUnstakeRequests: []FastUnstakeRequest{},
		PendingRequests:     []PendingRequest{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.ExchangeRate.IsNil() || !gs.ExchangeRate.IsPositive() {
		return ErrInvalidExchangeRate.Wrapf("genesis rate %s", gs.ExchangeRate)
	}
	if err := gs.MatchingPool.Validate(); err != nil {
		return err
	}
	if gs.TotalReserves.IsNil() || gs.TotalReserves.IsNegative() {
		return ErrInsufficientReserves.Wrap("total reserves must be non-negative")
	}

	ledgerIndexes := make(map[uint16]struct{})
	for _, elem := range gs.StakingLedgers {
		if _, ok := ledgerIndexes[elem.Index]; ok {
			return fmt.Errorf("duplicated staking ledger for index %d", elem.Index)
		}
		ledgerIndexes[elem.Index] = struct{}{}
		if !gs.Params.HasDerivativeIndex(elem.Index) {
			return ErrInvalidDerivativeIndex.Wrapf("ledger for unknown index %d", elem.Index)
		}
		if err := elem.Ledger.Validate(); err != nil {
			return err
		}
	}

	accounts := make(map[string]struct{})
	for _, elem := range gs.Unlockings {
		if _, err := sdk.AccAddressFromBech32(elem.Account); err != nil {
			return err
		}
		if _, ok := accounts[elem.Account]; ok {
			return fmt.Errorf("duplicated unlockings for %s", elem.Account)
		}
		accounts[elem.Account] = struct{}{}
		if len(elem.Unlockings) > MaxUnlockingChunks {
			return ErrNoMoreChunks.Wrapf("account %s", elem.Account)
		}
	}

	for _, elem := range gs.FastUnstakeRequests {
		if _, err := sdk.AccAddressFromBech32(elem.Account); err != nil {
			return err
		}
		if elem.Amount.IsNil() || !elem.Amount.IsPositive() {
			return fmt.Errorf("fast unstake request for %s must be positive", elem.Account)
		}
	}

	ids := make(map[uint64]struct{})
	for _, elem := range gs.PendingRequests {
		if _, ok := ids[elem.CorrelationID]; ok {
			return fmt.Errorf("duplicated pending request %d", elem.CorrelationID)
		}
		ids[elem.CorrelationID] = struct{}{}
		if elem.Request == nil {
			return ErrUnknownRequestKind.Wrapf("pending request %d", elem.CorrelationID)
		}
	}
	return nil
}
