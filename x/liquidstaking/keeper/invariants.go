package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// RegisterInvariants registers the module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "matching-pool", MatchingPoolInvariant(k))
	ir.RegisterRoute(types.ModuleName, "staking-ledgers", StakingLedgersInvariant(k))
	ir.RegisterRoute(types.ModuleName, "exchange-rate", ExchangeRateInvariant(k))
}

// AllInvariants runs all invariants of the module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			MatchingPoolInvariant(k),
			StakingLedgersInvariant(k),
			ExchangeRateInvariant(k),
		} {
			if res, stop := inv(ctx); stop {
				return res, stop
			}
		}
		return "", false
	}
}

// MatchingPoolInvariant checks locked <= total on both sides of the pool.
func MatchingPoolInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool := k.GetMatchingPool(ctx)
		err := pool.Validate()
		return sdk.FormatInvariant(types.ModuleName, "matching-pool",
			fmt.Sprintf("stake %s/%s unstake %s/%s: %v",
				pool.TotalStakeAmount.Locked, pool.TotalStakeAmount.Total,
				pool.TotalUnstakeAmount.Locked, pool.TotalUnstakeAmount.Total, err)), err != nil
	}
}

// StakingLedgersInvariant checks total == active + unlocking and the chunk
// bound on every delegate ledger.
func StakingLedgersInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)
		for _, l := range k.GetAllStakingLedgers(ctx) {
			if err := l.Ledger.Validate(); err != nil {
				broken = true
				msg += fmt.Sprintf("\tdelegate %d: %v\n", l.Index, err)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "staking-ledgers", msg), broken
	}
}

func ExchangeRateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		rate := k.GetExchangeRate(ctx)
		return sdk.FormatInvariant(types.ModuleName, "exchange-rate",
			fmt.Sprintf("rate %s", rate)), !rate.IsPositive()
	}
}
