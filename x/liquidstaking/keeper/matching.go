package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// DoMatching runs one matching round: it nets the free stake and unstake
// amounts of the pool, issues the remaining imbalance as bond, rebond and
// unbond requests spread over the delegates, and withdraws whatever has
// matured on them.
func (k Keeper) DoMatching(ctx context.Context) error {
	params := k.GetParams(ctx)
	pool := k.GetMatchingPool(ctx)

	bond, rebond, unbond, err := pool.Matching(k.GetTotalUnbonding(ctx))
	if err != nil {
		return err
	}
	k.LogInfo("matching", types.Matching,
		"bond", bond.String(), "rebond", rebond.String(), "unbond", unbond.String())

	k.setMatched(ctx, true)

	if err := k.MultiBond(ctx, bond); err != nil {
		return err
	}
	if err := k.MultiRebond(ctx, rebond); err != nil {
		return err
	}
	if err := k.MultiUnbond(ctx, unbond); err != nil {
		return err
	}

	// whatever both sides still have free settles locally
	err = k.mutateMatchingPool(ctx, func(pool *types.MatchingLedger) error {
		netted, err := pool.Net()
		if err != nil {
			return err
		}
		if netted.IsPositive() {
			k.LogDebug("netted locally", types.Matching, "amount", netted.String())
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := k.MultiWithdrawUnbonded(ctx, params.NumSlashingSpans); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeMatching,
			sdk.NewAttribute(types.AttributeKeyBondAmount, bond.String()),
			sdk.NewAttribute(types.AttributeKeyRebondAmount, rebond.String()),
			sdk.NewAttribute(types.AttributeKeyUnbondAmount, unbond.String()),
		),
	})
	return nil
}
