package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

type validatable interface {
	ValidateBasic() error
}

// run validates msg and executes fn as one transaction on goCtx.
func (k msgServer) run(goCtx context.Context, msg validatable, fn func(ctx sdk.Context) error) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.InTransaction(sdk.UnwrapSDKContext(goCtx), fn)
}

func (k msgServer) Stake(goCtx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	liquid := math.ZeroInt()
	err := k.run(goCtx, msg, func(ctx sdk.Context) error {
		staker := sdk.MustAccAddressFromBech32(msg.Staker)
		var err error
		liquid, err = k.Keeper.Stake(ctx, staker, msg.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgStakeResponse{LiquidAmount: liquid}, nil
}

func (k msgServer) Unstake(goCtx context.Context, msg *types.MsgUnstake) (*types.MsgUnstakeResponse, error) {
	resp := &types.MsgUnstakeResponse{StakingAmount: math.ZeroInt()}
	err := k.run(goCtx, msg, func(ctx sdk.Context) error {
		unstaker := sdk.MustAccAddressFromBech32(msg.Unstaker)
		var err error
		resp.StakingAmount, resp.TargetEra, err = k.Keeper.Unstake(ctx, unstaker, msg.LiquidAmount, msg.Provider)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (k msgServer) CancelUnstake(goCtx context.Context, msg *types.MsgCancelUnstake) (*types.MsgCancelUnstakeResponse, error) {
	remaining := math.ZeroInt()
	err := k.run(goCtx, msg, func(ctx sdk.Context) error {
		unstaker := sdk.MustAccAddressFromBech32(msg.Unstaker)
		var err error
		remaining, err = k.Keeper.CancelUnstake(ctx, unstaker, msg.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgCancelUnstakeResponse{Remaining: remaining}, nil
}

func (k msgServer) ClaimFor(goCtx context.Context, msg *types.MsgClaimFor) (*types.MsgClaimForResponse, error) {
	amount := math.ZeroInt()
	err := k.run(goCtx, msg, func(ctx sdk.Context) error {
		dest := sdk.MustAccAddressFromBech32(msg.Dest)
		var err error
		amount, err = k.Keeper.ClaimFor(ctx, dest)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimForResponse{Amount: amount}, nil
}

func (k msgServer) FastMatchUnstake(goCtx context.Context, msg *types.MsgFastMatchUnstake) (*types.MsgFastMatchUnstakeResponse, error) {
	err := k.run(goCtx, msg, func(ctx sdk.Context) error {
		unstakers := make([]sdk.AccAddress, 0, len(msg.Unstakers))
		for _, u := range msg.Unstakers {
			unstakers = append(unstakers, sdk.MustAccAddressFromBech32(u))
		}
		return k.Keeper.FastMatchUnstake(ctx, unstakers)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgFastMatchUnstakeResponse{}, nil
}

func (k msgServer) SetCurrentEra(goCtx context.Context, msg *types.MsgSetCurrentEra) (*types.MsgSetCurrentEraResponse, error) {
	err := k.run(goCtx, msg, func(ctx sdk.Context) error {
		return k.SetCurrentEraWithProof(ctx, sdk.MustAccAddressFromBech32(msg.Submitter), msg.Era, msg.Proof)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetCurrentEraResponse{}, nil
}

func (k msgServer) SetStakingLedger(goCtx context.Context, msg *types.MsgSetStakingLedger) (*types.MsgSetStakingLedgerResponse, error) {
	err := k.run(goCtx, msg, func(ctx sdk.Context) error {
		return k.SetStakingLedgerWithProof(ctx, sdk.MustAccAddressFromBech32(msg.Submitter), msg.DerivativeIndex, msg.Ledger, msg.Proof)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetStakingLedgerResponse{}, nil
}
