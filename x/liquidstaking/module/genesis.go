package liquidstaking

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/keeper"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	if err := k.SetExchangeRate(ctx, genState.ExchangeRate); err != nil {
		panic(err)
	}
	if err := k.CurrentEra.Set(ctx, genState.CurrentEra); err != nil {
		panic(err)
	}
	if err := k.EraStartBlock.Set(ctx, genState.EraStartBlock); err != nil {
		panic(err)
	}
	if err := k.IsMatched.Set(ctx, genState.IsMatched); err != nil {
		panic(err)
	}
	k.SetMatchingPool(ctx, genState.MatchingPool)
	k.SetTotalReserves(ctx, genState.TotalReserves)

	// Set all the delegate ledgers
	for _, elem := range genState.StakingLedgers {
		if err := k.StakingLedgers.Set(ctx, elem.Index, elem.Ledger); err != nil {
			panic(err)
		}
	}

	// Set all the depositor unlockings
	for _, elem := range genState.Unlockings {
		account, err := sdk.AccAddressFromBech32(elem.Account)
		if err != nil {
			panic(err)
		}
		if err := k.Unlockings.Set(ctx, account, elem.Unlockings); err != nil {
			panic(err)
		}
	}

	for _, elem := range genState.FastUnstakeRequests {
		account, err := sdk.AccAddressFromBech32(elem.Account)
		if err != nil {
			panic(err)
		}
		if err := k.FastUnstakeRequests.Set(ctx, account, elem.Amount); err != nil {
			panic(err)
		}
	}

	// Requests still in flight keep their correlation ids
	for _, elem := range genState.PendingRequests {
		if err := k.RemoteRequests.Set(ctx, elem.CorrelationID, elem.Request); err != nil {
			panic(err)
		}
	}

	if genState.ValidationData != nil {
		if err := k.ValidationData.Set(ctx, *genState.ValidationData); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.ExchangeRate = k.GetExchangeRate(ctx)

	era := k.GetEraState(ctx)
	genesis.CurrentEra = era.CurrentEra
	genesis.EraStartBlock = era.EraStartBlock
	genesis.IsMatched = era.IsMatched

	genesis.MatchingPool = k.GetMatchingPool(ctx)
	genesis.TotalReserves = k.GetTotalReserves(ctx)

	if ledgers := k.GetAllStakingLedgers(ctx); ledgers != nil {
		genesis.StakingLedgers = ledgers
	}
	if unlockings := k.GetAllUnlockings(ctx); unlockings != nil {
		genesis.Unlockings = unlockings
	}
	if requests := k.GetAllFastUnstakeRequests(ctx); requests != nil {
		genesis.FastUnstakeRequests = requests
	}
	if pending := k.GetAllPendingRequests(ctx); pending != nil {
		genesis.PendingRequests = pending
	}
	if snapshot, found := k.GetValidationData(ctx); found {
		genesis.ValidationData = &snapshot
	}

	return genesis
}
