package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Balance is one account's holdings at genesis.
type Balance struct {
	Address string    `json:"address"`
	Coins   sdk.Coins `json:"coins"`
}

type GenesisState struct {
	Balances []Balance `json:"balances"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{Balances: []Balance{}}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Balances))
	for _, b := range gs.Balances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return fmt.Errorf("invalid balance address %q: %w", b.Address, err)
		}
		if _, dup := seen[b.Address]; dup {
			return fmt.Errorf("duplicated balance for %s", b.Address)
		}
		seen[b.Address] = struct{}{}
		if err := b.Coins.Validate(); err != nil {
			return fmt.Errorf("invalid coins for %s: %w", b.Address, err)
		}
	}
	return nil
}

// Supply sums the genesis balances per denom.
func (gs GenesisState) Supply() map[string]math.Int {
	supply := make(map[string]math.Int)
	for _, b := range gs.Balances {
		for _, c := range b.Coins {
			if cur, ok := supply[c.Denom]; ok {
				supply[c.Denom] = cur.Add(c.Amount)
			} else {
				supply[c.Denom] = c.Amount
			}
		}
	}
	return supply
}
