package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// Stake takes amount of the staking asset from staker and mints derivative
// tokens for what is left after the remote fee and the reserve cut. The
// remote fee goes to the protocol fee receiver.
func (k Keeper) Stake(ctx context.Context, staker sdk.AccAddress, amount math.Int) (math.Int, error) {
	params := k.GetParams(ctx)
	if amount.LT(params.MinStake) {
		return math.ZeroInt(), types.ErrStakeTooSmall.Wrapf("%s is below %s", amount, params.MinStake)
	}

	reserves := params.ReserveFactor.MulInt(amount).TruncateInt()
	amountLessFee := amount.Sub(params.RemoteFee)
	if !amountLessFee.IsPositive() {
		return math.ZeroInt(), types.ErrStakeTooSmall.Wrapf("%s does not cover remote fee %s", amount, params.RemoteFee)
	}
	net := amountLessFee.Sub(reserves)
	if !net.IsPositive() {
		return math.ZeroInt(), types.ErrStakeTooSmall.Wrapf("%s does not cover fees and reserves", amount)
	}
	if err := k.ensureMarketCap(ctx, params, net); err != nil {
		return math.ZeroInt(), err
	}

	if k.reducibleBalance(ctx, staker, params.StakingDenom).LT(amount) {
		return math.ZeroInt(), types.ErrInsufficientFunds.Wrapf("%s holds less than %s%s", staker, amount, params.StakingDenom)
	}
	// the remote fee pays for the transfer and never becomes module liquidity
	if err := k.transfer(ctx, staker, params.FeeReceiver(), params.StakingDenom, params.RemoteFee, "remote fee"); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.receiveToModule(ctx, staker, params.StakingDenom, amountLessFee, "stake"); err != nil {
		return math.ZeroInt(), err
	}
	liquid, err := k.StakingToLiquid(ctx, net)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := k.mintTo(ctx, staker, params.LiquidDenom, liquid, "stake"); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.RecordStake(ctx, net); err != nil {
		return math.ZeroInt(), err
	}
	k.SetTotalReserves(ctx, k.GetTotalReserves(ctx).Add(reserves))
	k.bookkeepingBankKeeper.LogSubAccountTransaction(ctx, types.ModuleName, staker.String(), types.SubAccountReserves, sdk.NewCoin(params.StakingDenom, reserves), "stake reserves")

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStaked,
			sdk.NewAttribute(types.AttributeKeyAccount, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, net.String()),
			sdk.NewAttribute(types.AttributeKeyLiquidAmount, liquid.String()),
			sdk.NewAttribute(types.AttributeKeyReserves, reserves.String()),
		),
	})
	k.LogInfo("staked", types.Staking, "account", staker.String(), "amount", amount.String(), "liquid", liquid.String())
	return liquid, nil
}

// Unstake redeems liquidAmount derivative tokens through provider. It
// returns the staking amount owed and the era it can be claimed at; a
// matching-pool unstake only queues a fast-unstake request and returns zero.
func (k Keeper) Unstake(ctx context.Context, unstaker sdk.AccAddress, liquidAmount math.Int, provider types.UnstakeProvider) (math.Int, uint32, error) {
	params := k.GetParams(ctx)
	if liquidAmount.LT(params.MinUnstake) {
		return math.ZeroInt(), 0, types.ErrUnstakeTooSmall.Wrapf("%s is below %s", liquidAmount, params.MinUnstake)
	}
	if err := provider.Validate(); err != nil {
		return math.ZeroInt(), 0, err
	}

	if provider == types.ProviderMatchingPool {
		if err := k.requestFastUnstake(ctx, params, unstaker, liquidAmount); err != nil {
			return math.ZeroInt(), 0, err
		}
		k.emitUnstaked(ctx, unstaker, liquidAmount, math.ZeroInt(), provider, 0)
		return math.ZeroInt(), 0, nil
	}

	if provider == types.ProviderLoans && k.loansKeeper == nil {
		return math.ZeroInt(), 0, types.ErrLoansUnavailable
	}

	amount, err := k.LiquidToStaking(ctx, liquidAmount)
	if err != nil {
		return math.ZeroInt(), 0, err
	}
	targetEra := k.unstakeTargetEra(ctx, params)

	owner := unstaker
	if provider == types.ProviderLoans {
		owner = types.LoansAddress()
	}
	if err := k.AddUnlocking(ctx, owner, amount, targetEra); err != nil {
		return math.ZeroInt(), 0, err
	}
	if err := k.burnFrom(ctx, unstaker, params.LiquidDenom, liquidAmount, "unstake"); err != nil {
		return math.ZeroInt(), 0, err
	}
	if err := k.RecordUnstake(ctx, amount); err != nil {
		return math.ZeroInt(), 0, err
	}
	k.bookkeepingBankKeeper.LogSubAccountTransaction(ctx, owner.String(), types.ModuleName, types.SubAccountUnlocking, sdk.NewCoin(params.StakingDenom, amount), "unstake to unlocking")

	if provider == types.ProviderLoans {
		if err := k.loansInstantUnstake(ctx, params, unstaker, amount); err != nil {
			return math.ZeroInt(), 0, err
		}
	}

	k.emitUnstaked(ctx, unstaker, liquidAmount, amount, provider, targetEra)
	k.LogInfo("unstaked", types.Staking, "account", unstaker.String(), "liquid", liquidAmount.String(),
		"amount", amount.String(), "provider", string(provider), "target_era", targetEra)
	return amount, targetEra, nil
}

func (k Keeper) emitUnstaked(ctx context.Context, unstaker sdk.AccAddress, liquid, amount math.Int, provider types.UnstakeProvider, targetEra uint32) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUnstaked,
			sdk.NewAttribute(types.AttributeKeyAccount, unstaker.String()),
			sdk.NewAttribute(types.AttributeKeyLiquidAmount, liquid.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyProvider, string(provider)),
			sdk.NewAttribute(types.AttributeKeyTargetEra, formatEra(targetEra)),
		),
	})
}

func (k Keeper) GetUnlockings(ctx context.Context, account sdk.AccAddress) (types.UnlockChunks, bool) {
	chunks, err := k.Unlockings.Get(ctx, account)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		panic(err)
	}
	return chunks, true
}

func (k Keeper) setUnlockings(ctx context.Context, account sdk.AccAddress, chunks types.UnlockChunks) {
	var err error
	if len(chunks) == 0 {
		err = k.Unlockings.Remove(ctx, account)
	} else {
		err = k.Unlockings.Set(ctx, account, chunks)
	}
	if err != nil {
		panic(err)
	}
}

// AddUnlocking schedules amount for account at era, merging with the last
// chunk when it matures in the same era.
func (k Keeper) AddUnlocking(ctx context.Context, account sdk.AccAddress, amount math.Int, era uint32) error {
	chunks, _ := k.GetUnlockings(ctx, account)
	chunks, err := chunks.Add(amount, era)
	if err != nil {
		return err
	}
	k.setUnlockings(ctx, account, chunks)
	return nil
}

func (k Keeper) GetAllUnlockings(ctx context.Context) []types.AccountUnlockings {
	var out []types.AccountUnlockings
	err := k.Unlockings.Walk(ctx, nil, func(account sdk.AccAddress, chunks types.UnlockChunks) (bool, error) {
		out = append(out, types.AccountUnlockings{Account: account.String(), Unlockings: chunks})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return out
}

// loansInstantUnstake pays the unstaker right away with a loan taken against
// freshly minted collateral. The unlocking recorded for the loans account
// repays it at claim time.
func (k Keeper) loansInstantUnstake(ctx context.Context, params types.Params, unstaker sdk.AccAddress, amount math.Int) error {
	fee := params.LoansInstantUnstakeFeeRate.MulInt(amount).TruncateInt()
	borrowAmount, err := amount.SafeSub(fee)
	if err != nil || borrowAmount.IsNegative() {
		return types.ErrArithmetic.Wrapf("fee %s exceeds %s", fee, amount)
	}
	mintAmount, err := k.collateralFor(ctx, params, amount)
	if err != nil {
		return err
	}
	module := types.ModuleAddress()

	if err := k.mintTo(ctx, module, params.CollateralDenom, mintAmount, "loans collateral"); err != nil {
		return err
	}
	if err := k.loansKeeper.Mint(ctx, module, params.CollateralDenom, mintAmount); err != nil {
		return err
	}
	if err := k.loansKeeper.CollateralAsset(ctx, module, params.CollateralDenom, true); err != nil {
		k.LogDebug("collateral already enabled", types.Loans, "error", err)
	}
	if err := k.loansKeeper.Borrow(ctx, module, params.StakingDenom, borrowAmount); err != nil {
		return err
	}
	if err := k.payFromModule(ctx, unstaker, params.StakingDenom, borrowAmount, "loans instant unstake"); err != nil {
		return err
	}
	k.LogInfo("loans instant unstake", types.Loans, "account", unstaker.String(),
		"borrowed", borrowAmount.String(), "collateral", mintAmount.String(), "fee", fee.String())
	return nil
}

// collateralFor is the collateral needed to borrow amount: amount divided by
// the collateral factor, rounded up.
func (k Keeper) collateralFor(ctx context.Context, params types.Params, amount math.Int) (math.Int, error) {
	market, err := k.loansKeeper.GetMarketInfo(ctx, params.CollateralDenom)
	if err != nil {
		return math.ZeroInt(), err
	}
	if market.CollateralFactor.IsNil() || !market.CollateralFactor.IsPositive() {
		return math.ZeroInt(), types.ErrLoansUnavailable.Wrapf("collateral factor %s", market.CollateralFactor)
	}
	return math.LegacyNewDecFromInt(amount).Quo(market.CollateralFactor).Ceil().TruncateInt(), nil
}

func formatEra(era uint32) string {
	return strconv.FormatUint(uint64(era), 10)
}
