package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// reducibleBalance is what addr can spend of denom right now.
func (k Keeper) reducibleBalance(ctx context.Context, addr sdk.AccAddress, denom string) math.Int {
	return k.bankViewKeeper.SpendableCoins(ctx, addr).AmountOf(denom)
}

func (k Keeper) totalIssuance(ctx context.Context, denom string) math.Int {
	return k.bankViewKeeper.GetSupply(ctx, denom).Amount
}

func (k Keeper) receiveToModule(ctx context.Context, from sdk.AccAddress, denom string, amount math.Int, memo string) error {
	if !amount.IsPositive() {
		return nil
	}
	if k.reducibleBalance(ctx, from, denom).LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("%s holds less than %s%s", from, amount, denom)
	}
	return k.bookkeepingBankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denom, amount)), memo)
}

func (k Keeper) payFromModule(ctx context.Context, to sdk.AccAddress, denom string, amount math.Int, memo string) error {
	if !amount.IsPositive() {
		return nil
	}
	return k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, sdk.NewCoins(sdk.NewCoin(denom, amount)), memo)
}

func (k Keeper) transfer(ctx context.Context, from, to sdk.AccAddress, denom string, amount math.Int, memo string) error {
	if !amount.IsPositive() {
		return nil
	}
	if k.reducibleBalance(ctx, from, denom).LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("%s holds less than %s%s", from, amount, denom)
	}
	return k.bookkeepingBankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(sdk.NewCoin(denom, amount)), memo)
}

// mintTo mints through the module account and hands the coins to addr.
func (k Keeper) mintTo(ctx context.Context, to sdk.AccAddress, denom string, amount math.Int, memo string) error {
	if !amount.IsPositive() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bookkeepingBankKeeper.MintCoins(ctx, types.ModuleName, coins, memo); err != nil {
		return err
	}
	if to.Equals(types.ModuleAddress()) {
		return nil
	}
	return k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, coins, memo)
}

// burnFrom pulls the coins into the module account and burns them there.
func (k Keeper) burnFrom(ctx context.Context, from sdk.AccAddress, denom string, amount math.Int, memo string) error {
	if !amount.IsPositive() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if !from.Equals(types.ModuleAddress()) {
		if err := k.receiveToModule(ctx, from, denom, amount, memo); err != nil {
			return err
		}
	}
	return k.bookkeepingBankKeeper.BurnCoins(ctx, types.ModuleName, coins, memo)
}
