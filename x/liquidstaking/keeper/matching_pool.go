package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (k Keeper) GetMatchingPool(ctx context.Context) types.MatchingLedger {
	return getItem(ctx, k.MatchingPool, types.NewMatchingLedger())
}

func (k Keeper) SetMatchingPool(ctx context.Context, pool types.MatchingLedger) {
	if err := k.MatchingPool.Set(ctx, pool); err != nil {
		panic(err)
	}
}

// mutateMatchingPool applies fn to the pool and persists it only if fn succeeds.
func (k Keeper) mutateMatchingPool(ctx context.Context, fn func(pool *types.MatchingLedger) error) error {
	pool := k.GetMatchingPool(ctx)
	if err := fn(&pool); err != nil {
		return err
	}
	if err := pool.Validate(); err != nil {
		return err
	}
	k.SetMatchingPool(ctx, pool)
	return nil
}

func (k Keeper) RecordStake(ctx context.Context, amount math.Int) error {
	return k.mutateMatchingPool(ctx, func(pool *types.MatchingLedger) error {
		return pool.AddStakeAmount(amount)
	})
}

func (k Keeper) RecordUnstake(ctx context.Context, amount math.Int) error {
	return k.mutateMatchingPool(ctx, func(pool *types.MatchingLedger) error {
		return pool.AddUnstakeAmount(amount)
	})
}

func (k Keeper) SubStakeAmount(ctx context.Context, amount math.Int) error {
	return k.mutateMatchingPool(ctx, func(pool *types.MatchingLedger) error {
		return pool.SubStakeAmount(amount)
	})
}

func (k Keeper) setStakeLock(ctx context.Context, amount math.Int) error {
	return k.mutateMatchingPool(ctx, func(pool *types.MatchingLedger) error {
		return pool.SetStakeAmountLock(amount)
	})
}

func (k Keeper) setUnstakeLock(ctx context.Context, amount math.Int) error {
	return k.mutateMatchingPool(ctx, func(pool *types.MatchingLedger) error {
		return pool.SetUnstakeAmountLock(amount)
	})
}

func (k Keeper) consolidateStake(ctx context.Context, amount math.Int) error {
	return k.mutateMatchingPool(ctx, func(pool *types.MatchingLedger) error {
		return pool.ConsolidateStake(amount)
	})
}

func (k Keeper) consolidateUnstake(ctx context.Context, amount math.Int) error {
	return k.mutateMatchingPool(ctx, func(pool *types.MatchingLedger) error {
		return pool.ConsolidateUnstake(amount)
	})
}
