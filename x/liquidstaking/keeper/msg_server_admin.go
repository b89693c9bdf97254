package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// runAdmin is run for messages only the authority may send.
func (k msgServer) runAdmin(goCtx context.Context, authority string, msg validatable, fn func(ctx sdk.Context) error) (*types.MsgAdminResponse, error) {
	if authority != k.GetAuthority() {
		return nil, types.ErrInvalidSigner.Wrapf("invalid authority; expected %s, got %s", k.GetAuthority(), authority)
	}
	if err := k.run(goCtx, msg, fn); err != nil {
		return nil, err
	}
	return &types.MsgAdminResponse{}, nil
}

func (k msgServer) ForceMatching(goCtx context.Context, msg *types.MsgForceMatching) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.DoMatching(ctx)
	})
}

func (k msgServer) ForceAdvanceEra(goCtx context.Context, msg *types.MsgForceAdvanceEra) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.AdvanceEra(ctx, msg.Offset)
	})
}

func (k msgServer) ForceSetEraStartBlock(goCtx context.Context, msg *types.MsgForceSetEraStartBlock) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		k.Keeper.ForceSetEraStartBlock(ctx, msg.Height)
		return nil
	})
}

func (k msgServer) ForceSetCurrentEra(goCtx context.Context, msg *types.MsgForceSetCurrentEra) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		k.Keeper.ForceSetCurrentEra(ctx, msg.Era)
		return nil
	})
}

func (k msgServer) ForceSetStakingLedger(goCtx context.Context, msg *types.MsgForceSetStakingLedger) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.Keeper.ForceSetStakingLedger(ctx, msg.DerivativeIndex, msg.Ledger)
	})
}

func (k msgServer) NotificationReceived(goCtx context.Context, msg *types.MsgNotificationReceived) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.OnConfirmation(ctx, msg.CorrelationID, msg.Outcome)
	})
}

func (k msgServer) ReduceReserves(goCtx context.Context, msg *types.MsgReduceReserves) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.Keeper.ReduceReserves(ctx, sdk.MustAccAddressFromBech32(msg.Receiver), msg.Amount)
	})
}

func (k msgServer) RemoteOperation(goCtx context.Context, msg *types.MsgRemoteOperation) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.Keeper.RemoteOperation(ctx, msg)
	})
}

func (k msgServer) UpdateCommissionRate(goCtx context.Context, msg *types.MsgUpdateCommissionRate) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.Keeper.UpdateCommissionRate(ctx, msg.CommissionRate)
	})
}

func (k msgServer) UpdateIncentive(goCtx context.Context, msg *types.MsgUpdateIncentive) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.Keeper.UpdateIncentive(ctx, msg.Amount)
	})
}

func (k msgServer) UpdateStakingLedgerCap(goCtx context.Context, msg *types.MsgUpdateStakingLedgerCap) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.Keeper.UpdateStakingLedgerCap(ctx, msg.Cap)
	})
}

func (k msgServer) UpdateReserveFactor(goCtx context.Context, msg *types.MsgUpdateReserveFactor) (*types.MsgAdminResponse, error) {
	return k.runAdmin(goCtx, msg.Authority, msg, func(ctx sdk.Context) error {
		return k.Keeper.UpdateReserveFactor(ctx, msg.ReserveFactor)
	})
}
