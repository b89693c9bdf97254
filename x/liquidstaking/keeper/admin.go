package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// ForceSetStakingLedger overwrites a delegate ledger. It refuses while the
// ledger was already updated this round or a request for it is in flight.
func (k Keeper) ForceSetStakingLedger(ctx context.Context, index uint16, ledger types.StakingLedger) error {
	params := k.GetParams(ctx)
	if err := k.ensureDerivativeIndex(params, index); err != nil {
		return err
	}
	if err := ledger.Validate(); err != nil {
		return err
	}
	if k.IsLedgerUpdated(ctx, index) || k.hasPendingRequests(ctx, index) {
		return types.ErrStakingLedgerLocked.Wrapf("delegate %d", index)
	}
	k.putLedger(ctx, index, ledger)
	k.LogWarn("staking ledger forced", types.Ledgers, "index", index, "total", ledger.Total.String(), "active", ledger.Active.String())
	return nil
}

// ReduceReserves pays amount of the reserves out to receiver.
func (k Keeper) ReduceReserves(ctx context.Context, receiver sdk.AccAddress, amount math.Int) error {
	reserves := k.GetTotalReserves(ctx)
	remaining := reserves.Sub(amount)
	if remaining.IsNegative() {
		return types.ErrInsufficientReserves.Wrapf("reduce %s exceeds reserves %s", amount, reserves)
	}
	params := k.GetParams(ctx)
	if err := k.payFromModule(ctx, receiver, params.StakingDenom, amount, "reduce reserves"); err != nil {
		return err
	}
	k.SetTotalReserves(ctx, remaining)
	k.bookkeepingBankKeeper.LogSubAccountTransaction(ctx, receiver.String(), types.ModuleName, types.SubAccountReserves, sdk.NewCoin(params.StakingDenom, amount), "reduce reserves")

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeReservesReduced,
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	})
	k.LogInfo("reserves reduced", types.Reserves, "receiver", receiver.String(), "amount", amount.String(), "remaining", remaining.String())
	return nil
}

func (k Keeper) UpdateCommissionRate(ctx context.Context, rate math.LegacyDec) error {
	params := k.GetParams(ctx)
	params.CommissionRate = rate
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	k.emitParamUpdate(ctx, types.EventTypeCommissionRateUpdated, types.AttributeKeyRate, rate.String())
	return nil
}

func (k Keeper) UpdateIncentive(ctx context.Context, amount math.Int) error {
	params := k.GetParams(ctx)
	params.Incentive = amount
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	k.emitParamUpdate(ctx, types.EventTypeIncentiveUpdated, types.AttributeKeyAmount, amount.String())
	return nil
}

func (k Keeper) UpdateStakingLedgerCap(ctx context.Context, ledgerCap math.Int) error {
	params := k.GetParams(ctx)
	params.StakingLedgerCap = ledgerCap
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	k.emitParamUpdate(ctx, types.EventTypeStakingLedgerCapUpdated, types.AttributeKeyAmount, ledgerCap.String())
	return nil
}

// UpdateReserveFactor changes the share of future stakes kept as reserves.
// Reserves already collected stay as they are.
func (k Keeper) UpdateReserveFactor(ctx context.Context, factor math.LegacyDec) error {
	params := k.GetParams(ctx)
	params.ReserveFactor = factor
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	k.emitParamUpdate(ctx, types.EventTypeReserveFactorUpdated, types.AttributeKeyRate, factor.String())
	return nil
}

func (k Keeper) emitParamUpdate(ctx context.Context, eventType, key, value string) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(eventType, sdk.NewAttribute(key, value)),
	})
}

// RemoteOperation issues a single remote operation on behalf of the authority.
func (k Keeper) RemoteOperation(ctx context.Context, msg *types.MsgRemoteOperation) error {
	switch msg.Kind {
	case types.RequestKindBond:
		return k.Bond(ctx, msg.DerivativeIndex, msg.Amount)
	case types.RequestKindBondExtra:
		return k.BondExtra(ctx, msg.DerivativeIndex, msg.Amount)
	case types.RequestKindUnbond:
		return k.Unbond(ctx, msg.DerivativeIndex, msg.Amount)
	case types.RequestKindRebond:
		return k.Rebond(ctx, msg.DerivativeIndex, msg.Amount)
	case types.RequestKindWithdrawUnbonded:
		return k.WithdrawUnbonded(ctx, msg.DerivativeIndex, msg.NumSlashingSpans)
	case types.RequestKindNominate:
		return k.Nominate(ctx, msg.DerivativeIndex, msg.Targets)
	default:
		return types.ErrUnknownRequestKind.Wrapf("%q", msg.Kind)
	}
}
