package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (k Keeper) GetFastUnstakeRequest(ctx context.Context, account sdk.AccAddress) (math.Int, bool) {
	amount, err := k.FastUnstakeRequests.Get(ctx, account)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), false
	}
	if err != nil {
		panic(err)
	}
	return amount, true
}

func (k Keeper) setFastUnstakeRequest(ctx context.Context, account sdk.AccAddress, amount math.Int) {
	var err error
	if amount.IsPositive() {
		err = k.FastUnstakeRequests.Set(ctx, account, amount)
	} else {
		err = k.FastUnstakeRequests.Remove(ctx, account)
	}
	if err != nil {
		panic(err)
	}
}

func (k Keeper) GetAllFastUnstakeRequests(ctx context.Context) []types.FastUnstakeRequest {
	var out []types.FastUnstakeRequest
	err := k.FastUnstakeRequests.Walk(ctx, nil, func(account sdk.AccAddress, amount math.Int) (bool, error) {
		out = append(out, types.FastUnstakeRequest{Account: account.String(), Amount: amount})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return out
}

// requestFastUnstake grows the account's request, never beyond what it holds.
func (k Keeper) requestFastUnstake(ctx context.Context, params types.Params, account sdk.AccAddress, amount math.Int) error {
	request, _ := k.GetFastUnstakeRequest(ctx, account)
	request, err := request.SafeAdd(amount)
	if err != nil {
		return types.ErrArithmetic.Wrap(err.Error())
	}
	request = math.MinInt(request, k.reducibleBalance(ctx, account, params.LiquidDenom))
	k.setFastUnstakeRequest(ctx, account, request)
	k.LogInfo("fast unstake requested", types.FastUnstake, "account", account.String(), "request", request.String())
	return nil
}

// CancelUnstake shrinks the account's fast-unstake request by amount and
// returns what is left of it. Cancelling more than requested clears it.
func (k Keeper) CancelUnstake(ctx context.Context, account sdk.AccAddress, amount math.Int) (math.Int, error) {
	request, found := k.GetFastUnstakeRequest(ctx, account)
	if !found {
		return math.ZeroInt(), nil
	}
	params := k.GetParams(ctx)
	remaining := math.MinInt(request, k.reducibleBalance(ctx, account, params.LiquidDenom)).Sub(amount)
	if remaining.IsNegative() {
		remaining = math.ZeroInt()
	}
	k.setFastUnstakeRequest(ctx, account, remaining)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUnstakeCancelled,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	})
	return remaining, nil
}

// FastMatchUnstake settles the fast-unstake requests of the given accounts
// against stake in the pool that is not committed to a remote operation.
func (k Keeper) FastMatchUnstake(ctx context.Context, unstakers []sdk.AccAddress) error {
	for _, unstaker := range unstakers {
		if err := k.settleFastUnstake(ctx, unstaker); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) settleFastUnstake(ctx context.Context, unstaker sdk.AccAddress) error {
	request, found := k.GetFastUnstakeRequest(ctx, unstaker)
	if !found {
		return nil
	}
	params := k.GetParams(ctx)
	request = math.MinInt(request, k.reducibleBalance(ctx, unstaker, params.LiquidDenom))

	freeStake, err := k.GetMatchingPool(ctx).TotalStakeAmount.Free()
	if err != nil {
		return err
	}
	available, err := k.StakingToLiquid(ctx, freeStake)
	if err != nil {
		return err
	}
	matched := math.MinInt(request, available)

	if matched.IsPositive() {
		fee := params.FastUnstakeFeeRate.MulInt(matched).TruncateInt()
		toBurn := matched.Sub(fee)
		if err := k.burnFrom(ctx, unstaker, params.LiquidDenom, toBurn, "fast unstake"); err != nil {
			return err
		}
		if err := k.transfer(ctx, unstaker, params.FeeReceiver(), params.LiquidDenom, fee, "fast unstake fee"); err != nil {
			return err
		}
		received, err := k.LiquidToStaking(ctx, toBurn)
		if err != nil {
			return err
		}
		if err := k.SubStakeAmount(ctx, received); err != nil {
			return err
		}
		if err := k.payFromModule(ctx, unstaker, params.StakingDenom, received, "fast unstake"); err != nil {
			return err
		}

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeFastUnstakeMatched,
				sdk.NewAttribute(types.AttributeKeyAccount, unstaker.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, received.String()),
				sdk.NewAttribute(types.AttributeKeyLiquidAmount, matched.String()),
				sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			),
		})
		k.LogInfo("fast unstake matched", types.FastUnstake, "account", unstaker.String(),
			"matched", matched.String(), "received", received.String(), "fee", fee.String())
	}

	k.setFastUnstakeRequest(ctx, unstaker, request.Sub(matched))
	return nil
}
