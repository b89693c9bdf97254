package keeper

import (
	"context"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (k Keeper) GetEraState(ctx context.Context) types.EraState {
	return types.EraState{
		CurrentEra:    k.GetCurrentEra(ctx),
		EraStartBlock: k.GetEraStartBlock(ctx),
		IsMatched:     k.IsMatchedThisEra(ctx),
	}
}

// GetSummary reads the aggregate accounting state: rate, era, pool and ledger totals.
func (k Keeper) GetSummary(ctx context.Context) types.Summary {
	params := k.GetParams(ctx)
	return types.Summary{
		ExchangeRate:      k.GetExchangeRate(ctx),
		Era:               k.GetEraState(ctx),
		MatchingPool:      k.GetMatchingPool(ctx),
		TotalBonded:       k.GetTotalBonded(ctx),
		TotalActiveBonded: k.GetTotalActiveBonded(ctx),
		TotalUnbonding:    k.GetTotalUnbonding(ctx),
		TotalReserves:     k.GetTotalReserves(ctx),
		PendingRequests:   len(k.GetAllPendingRequests(ctx)),
		MarketCap:         params.MarketCap(),
		LiquidTotalIssued: k.totalIssuance(ctx, params.LiquidDenom),
	}
}
