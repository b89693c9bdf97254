package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/productscience/liquidstaking/x/bookkeeper/types"
)

// InitGenesis creates the module accounts and funds every genesis balance.
// Supply follows from the mints.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.bankKeeper.SetParams(ctx, banktypes.DefaultParams()); err != nil {
		panic(err)
	}
	for _, name := range k.moduleAccounts {
		k.accountKeeper.GetModuleAccount(ctx, name)
	}
	for _, b := range genState.Balances {
		addr := sdk.MustAccAddressFromBech32(b.Address)
		if err := k.FundAccount(ctx, addr, b.Coins, "genesis"); err != nil {
			panic(err)
		}
	}
}

func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genesis := types.DefaultGenesis()
	for _, b := range k.bankKeeper.GetAccountsBalances(ctx) {
		if b.Coins.IsZero() {
			continue
		}
		genesis.Balances = append(genesis.Balances, types.Balance{Address: b.Address, Coins: b.Coins})
	}
	return genesis
}
