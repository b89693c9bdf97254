package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (k Keeper) GetExchangeRate(ctx context.Context) math.LegacyDec {
	return getItem(ctx, k.ExchangeRate, types.DefaultExchangeRate())
}

func (k Keeper) SetExchangeRate(ctx context.Context, rate math.LegacyDec) error {
	if rate.IsNil() || !rate.IsPositive() {
		return types.ErrInvalidExchangeRate.Wrapf("rate %s must be positive", rate)
	}
	return k.ExchangeRate.Set(ctx, rate)
}

// StakingToLiquid converts base asset into derivative units at the current rate.
func (k Keeper) StakingToLiquid(ctx context.Context, amount math.Int) (math.Int, error) {
	return types.StakingToLiquid(amount, k.GetExchangeRate(ctx))
}

// LiquidToStaking converts derivative units into base asset at the current rate.
func (k Keeper) LiquidToStaking(ctx context.Context, amount math.Int) (math.Int, error) {
	return types.LiquidToStaking(amount, k.GetExchangeRate(ctx))
}

// UpdateExchangeRate recomputes the rate from the active bonded total, the
// pool totals and the derivative supply. It only ever raises the rate.
func (k Keeper) UpdateExchangeRate(ctx context.Context) error {
	params := k.GetParams(ctx)
	pool := k.GetMatchingPool(ctx)
	current := k.GetExchangeRate(ctx)

	rate, updated, err := types.RecomputeExchangeRate(
		current,
		k.GetTotalActiveBonded(ctx),
		pool.TotalStakeAmount.Total,
		pool.TotalUnstakeAmount.Total,
		k.totalIssuance(ctx, params.LiquidDenom),
	)
	if err != nil {
		return err
	}
	if !updated {
		return nil
	}
	if err := k.SetExchangeRate(ctx, rate); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeExchangeRateUpdated,
			sdk.NewAttribute(types.AttributeKeyRate, rate.String()),
		),
	})
	k.LogInfo("exchange rate updated", types.Era, "from", current.String(), "to", rate.String())
	return nil
}

// ensureMarketCap rejects a stake that would push the bonded total past the
// cap of all delegates together.
func (k Keeper) ensureMarketCap(ctx context.Context, params types.Params, amount math.Int) error {
	total := k.GetTotalBonded(ctx).Add(amount)
	if total.GT(params.MarketCap()) {
		return types.ErrCapExceeded.Wrapf("%s would exceed market cap %s", total, params.MarketCap())
	}
	return nil
}

// ensureStakingLedgerCap applies the same check to a single delegate.
func (k Keeper) ensureStakingLedgerCap(ctx context.Context, params types.Params, index uint16, amount math.Int) error {
	bonded := math.ZeroInt()
	if ledger, found := k.GetStakingLedger(ctx, index); found {
		bonded = ledger.Total
	}
	if bonded.Add(amount).GT(params.StakingLedgerCap) {
		return types.ErrCapExceeded.Wrapf("delegate %d: %s + %s exceeds ledger cap %s", index, bonded, amount, params.StakingLedgerCap)
	}
	return nil
}
