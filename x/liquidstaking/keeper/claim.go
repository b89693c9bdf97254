package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// ClaimFor pays dest every unlocking chunk that has matured by the current
// era, provided the module already holds that much unencumbered staking asset.
func (k Keeper) ClaimFor(ctx context.Context, dest sdk.AccAddress) (math.Int, error) {
	chunks, found := k.GetUnlockings(ctx, dest)
	if !found {
		return math.ZeroInt(), types.ErrNoUnlockings.Wrapf("account %s", dest)
	}
	currentEra := k.GetCurrentEra(ctx)
	amount, pending := chunks.Split(currentEra)
	if amount.IsZero() {
		return math.ZeroInt(), types.ErrNothingToClaim.Wrapf("nothing matured by era %d", currentEra)
	}

	params := k.GetParams(ctx)
	if unclaimed := k.unclaimedStaking(ctx, params); unclaimed.LT(amount) {
		return math.ZeroInt(), types.ErrNotWithdrawn.Wrapf("claim %s exceeds withdrawn %s", amount, unclaimed)
	}
	if err := k.payClaim(ctx, params, dest, amount); err != nil {
		return math.ZeroInt(), err
	}
	k.setUnlockings(ctx, dest, pending)
	k.bookkeepingBankKeeper.LogSubAccountTransaction(ctx, types.ModuleName, dest.String(), types.SubAccountUnlocking, sdk.NewCoin(params.StakingDenom, amount), "claim")

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaimedFor,
			sdk.NewAttribute(types.AttributeKeyAccount, dest.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	})
	k.LogInfo("claimed", types.Claims, "account", dest.String(), "amount", amount.String(), "era", currentEra)
	return amount, nil
}

// unclaimedStaking is the module's staking balance not held for reserves or
// for stake still waiting to be bonded.
func (k Keeper) unclaimedStaking(ctx context.Context, params types.Params) math.Int {
	balance := k.reducibleBalance(ctx, types.ModuleAddress(), params.StakingDenom)
	unclaimed := balance.Sub(k.GetTotalReserves(ctx)).Sub(k.GetMatchingPool(ctx).TotalStakeAmount.Total)
	if unclaimed.IsNegative() {
		return math.ZeroInt()
	}
	return unclaimed
}

func (k Keeper) payClaim(ctx context.Context, params types.Params, dest sdk.AccAddress, amount math.Int) error {
	if !dest.Equals(types.LoansAddress()) {
		return k.payFromModule(ctx, dest, params.StakingDenom, amount, "claim")
	}
	if k.loansKeeper == nil {
		return types.ErrLoansUnavailable
	}

	module := types.ModuleAddress()
	borrowed, err := k.loansKeeper.GetCurrentBorrowBalance(ctx, module, params.StakingDenom)
	if err != nil {
		return err
	}
	if err := k.loansKeeper.RepayBorrow(ctx, module, params.StakingDenom, math.MinInt(borrowed, amount)); err != nil {
		return err
	}
	redeem, err := k.collateralFor(ctx, params, amount)
	if err != nil {
		return err
	}
	if err := k.loansKeeper.Redeem(ctx, module, params.CollateralDenom, redeem); err != nil {
		return err
	}
	return k.burnFrom(ctx, module, params.CollateralDenom, redeem, "loans collateral")
}
