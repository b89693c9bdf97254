package keeper

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// GetRemoteRequest returns the pending request behind a correlation id.
func (k Keeper) GetRemoteRequest(ctx context.Context, id uint64) (types.RemoteRequest, bool) {
	req, err := k.RemoteRequests.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		panic(err)
	}
	return req, true
}

func (k Keeper) GetAllPendingRequests(ctx context.Context) []types.PendingRequest {
	var pending []types.PendingRequest
	err := k.RemoteRequests.Walk(ctx, nil, func(id uint64, req types.RemoteRequest) (bool, error) {
		pending = append(pending, types.PendingRequest{CorrelationID: id, Request: req})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return pending
}

// submit hands req to the transport and records it under the returned correlation id.
func (k Keeper) submit(ctx context.Context, req types.RemoteRequest) (uint64, error) {
	id, err := k.transport.Submit(ctx, req)
	if err != nil {
		return 0, err
	}
	if _, found := k.GetRemoteRequest(ctx, id); found {
		return 0, errorsmod.Wrapf(sdkerrors.ErrConflict, "correlation id %d already pending", id)
	}
	if err := k.RemoteRequests.Set(ctx, id, req); err != nil {
		return 0, err
	}
	k.LogInfo("remote request submitted", types.Requests, "correlation_id", id, "request", req.String())
	return id, nil
}

func (k Keeper) emitRequestEvent(ctx context.Context, eventType string, id uint64, index uint16, attrs ...sdk.Attribute) {
	attrs = append([]sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyCorrelationID, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyDerivativeIndex, strconv.FormatUint(uint64(index), 10)),
	}, attrs...)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(eventType, attrs...),
	})
}

func (k Keeper) ensureDerivativeIndex(params types.Params, index uint16) error {
	if !params.HasDerivativeIndex(index) {
		return types.ErrInvalidDerivativeIndex.Wrapf("index %d is not configured", index)
	}
	return nil
}

// Bond opens the ledger of a delegate with amount. A delegate that is
// already bonded gets a bond extra instead.
func (k Keeper) Bond(ctx context.Context, index uint16, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	if _, found := k.GetStakingLedger(ctx, index); found {
		return k.BondExtra(ctx, index, amount)
	}

	params := k.GetParams(ctx)
	if err := k.ensureDerivativeIndex(params, index); err != nil {
		return err
	}
	if k.hasPendingBond(ctx, index) {
		return types.ErrAlreadyBonded.Wrapf("delegate %d has a bond awaiting confirmation", index)
	}
	if amount.LT(params.MinNominatorBond) {
		return types.ErrInsufficientBond.Wrapf("bond %s is below %s", amount, params.MinNominatorBond)
	}
	if err := k.ensureStakingLedgerCap(ctx, params, index, amount); err != nil {
		return err
	}
	if err := k.setStakeLock(ctx, amount); err != nil {
		return err
	}

	id, err := k.submit(ctx, types.BondRequest{Index: index, Amount: amount})
	if err != nil {
		return err
	}
	k.emitRequestEvent(ctx, types.EventTypeBonding, id, index,
		sdk.NewAttribute(types.AttributeKeyDelegate, types.DelegateAddress(index).String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

func (k Keeper) BondExtra(ctx context.Context, index uint16, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	params := k.GetParams(ctx)
	if err := k.ensureDerivativeIndex(params, index); err != nil {
		return err
	}
	if _, found := k.GetStakingLedger(ctx, index); !found {
		return types.ErrNotBonded.Wrapf("delegate %d", index)
	}
	if err := k.ensureStakingLedgerCap(ctx, params, index, amount); err != nil {
		return err
	}
	if err := k.setStakeLock(ctx, amount); err != nil {
		return err
	}

	id, err := k.submit(ctx, types.BondExtraRequest{Index: index, Amount: amount})
	if err != nil {
		return err
	}
	k.emitRequestEvent(ctx, types.EventTypeBondingExtra, id, index,
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

// Unbond starts unbonding amount on a delegate. What stays active must be
// either nothing or at least the minimum nominator bond.
func (k Keeper) Unbond(ctx context.Context, index uint16, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	params := k.GetParams(ctx)
	if err := k.ensureDerivativeIndex(params, index); err != nil {
		return err
	}
	ledger, found := k.GetStakingLedger(ctx, index)
	if !found {
		return types.ErrNotBonded.Wrapf("delegate %d", index)
	}
	remaining := ledger.Active.Sub(amount)
	if remaining.IsNegative() || (!remaining.IsZero() && remaining.LT(params.MinNominatorBond)) {
		return types.ErrInsufficientBond.Wrapf("delegate %d would keep %s active", index, remaining)
	}
	if _, err := ledger.Unlocking.Add(amount, k.unbondTargetEra(ctx, params)); err != nil {
		return err
	}
	if err := k.setUnstakeLock(ctx, amount); err != nil {
		return err
	}

	id, err := k.submit(ctx, types.UnbondRequest{Index: index, Amount: amount})
	if err != nil {
		return err
	}
	k.emitRequestEvent(ctx, types.EventTypeUnbonding, id, index,
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

func (k Keeper) Rebond(ctx context.Context, index uint16, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	params := k.GetParams(ctx)
	if err := k.ensureDerivativeIndex(params, index); err != nil {
		return err
	}
	if _, found := k.GetStakingLedger(ctx, index); !found {
		return types.ErrNotBonded.Wrapf("delegate %d", index)
	}
	if err := k.setStakeLock(ctx, amount); err != nil {
		return err
	}

	id, err := k.submit(ctx, types.RebondRequest{Index: index, Amount: amount})
	if err != nil {
		return err
	}
	k.emitRequestEvent(ctx, types.EventTypeRebonding, id, index,
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	)
	return nil
}

// WithdrawUnbonded asks the delegate to release its matured chunks. It is a
// no-op while nothing has matured.
func (k Keeper) WithdrawUnbonded(ctx context.Context, index uint16, numSlashingSpans uint32) error {
	params := k.GetParams(ctx)
	if err := k.ensureDerivativeIndex(params, index); err != nil {
		return err
	}
	ledger, found := k.GetStakingLedger(ctx, index)
	if !found {
		return types.ErrNotBonded.Wrapf("delegate %d", index)
	}
	if ledger.Unbonded(k.GetCurrentEra(ctx)).IsZero() {
		return nil
	}

	id, err := k.submit(ctx, types.WithdrawUnbondedRequest{Index: index, NumSlashingSpans: numSlashingSpans})
	if err != nil {
		return err
	}
	k.emitRequestEvent(ctx, types.EventTypeWithdrawingUnbonded, id, index,
		sdk.NewAttribute(types.AttributeKeySlashingSpans, strconv.FormatUint(uint64(numSlashingSpans), 10)),
	)
	return nil
}

func (k Keeper) Nominate(ctx context.Context, index uint16, targets []string) error {
	params := k.GetParams(ctx)
	if err := k.ensureDerivativeIndex(params, index); err != nil {
		return err
	}
	if _, found := k.GetStakingLedger(ctx, index); !found {
		return types.ErrNotBonded.Wrapf("delegate %d", index)
	}

	id, err := k.submit(ctx, types.NominateRequest{Index: index, Targets: targets})
	if err != nil {
		return err
	}
	k.emitRequestEvent(ctx, types.EventTypeNominating, id, index,
		sdk.NewAttribute(types.AttributeKeyTargets, strings.Join(targets, ",")),
	)
	return nil
}

// MultiBond spreads total over the delegates with the configured strategy.
// Delegates whose first bond is still unconfirmed are left out.
func (k Keeper) MultiBond(ctx context.Context, total math.Int) error {
	if !total.IsPositive() {
		return nil
	}
	params := k.GetParams(ctx)
	var delegates []types.DelegateAmounts
	for _, d := range k.delegateAmounts(ctx, params) {
		if k.hasPendingBond(ctx, d.Index) {
			continue
		}
		delegates = append(delegates, d)
	}
	distributions := k.distributionStrategy(params).BondDistributions(delegates, total, params.StakingLedgerCap, params.MinNominatorBond)
	for _, d := range distributions {
		if err := k.Bond(ctx, d.Index, d.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) MultiUnbond(ctx context.Context, total math.Int) error {
	if !total.IsPositive() {
		return nil
	}
	params := k.GetParams(ctx)
	distributions := k.distributionStrategy(params).UnbondDistributions(k.delegateAmounts(ctx, params), total, params.MinNominatorBond)
	for _, d := range distributions {
		if err := k.Unbond(ctx, d.Index, d.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) MultiRebond(ctx context.Context, total math.Int) error {
	if !total.IsPositive() {
		return nil
	}
	params := k.GetParams(ctx)
	distributions := k.distributionStrategy(params).RebondDistributions(k.delegateAmounts(ctx, params), total)
	for _, d := range distributions {
		if err := k.Rebond(ctx, d.Index, d.Amount); err != nil {
			return err
		}
	}
	return nil
}

// MultiWithdrawUnbonded withdraws matured chunks from every bonded delegate.
func (k Keeper) MultiWithdrawUnbonded(ctx context.Context, numSlashingSpans uint32) error {
	for _, l := range k.GetAllStakingLedgers(ctx) {
		if err := k.WithdrawUnbonded(ctx, l.Index, numSlashingSpans); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) hasPendingBond(ctx context.Context, index uint16) bool {
	found := false
	err := k.RemoteRequests.Walk(ctx, nil, func(_ uint64, req types.RemoteRequest) (bool, error) {
		found = req.Kind() == types.RequestKindBond && req.DerivativeIndex() == index
		return found, nil
	})
	if err != nil {
		panic(err)
	}
	return found
}

// OnConfirmation applies the outcome of the request behind id. Unknown ids
// are ignored. A failed outcome drops the request and leaves its pool locks
// in place.
func (k Keeper) OnConfirmation(ctx context.Context, id uint64, outcome types.Outcome) error {
	req, found := k.GetRemoteRequest(ctx, id)
	if !found {
		k.LogDebug("confirmation for unknown request", types.Requests, "correlation_id", id)
		return nil
	}
	if err := k.RemoteRequests.Remove(ctx, id); err != nil {
		return err
	}

	if !outcome.Success {
		k.LogWarn("remote request failed, locked amounts stay locked", types.Requests,
			"correlation_id", id, "request", req.String(), "reason", outcome.Error)
		k.emitRequestEvent(ctx, types.EventTypeRemoteRequestFailed, id, req.DerivativeIndex(),
			sdk.NewAttribute(types.AttributeKeyRequestKind, string(req.Kind())),
			sdk.NewAttribute(types.AttributeKeyAmount, types.RequestAmount(req).String()),
			sdk.NewAttribute(types.AttributeKeyReason, outcome.Error),
		)
		return nil
	}

	if err := k.applyConfirmed(ctx, req); err != nil {
		return err
	}

	k.emitRequestEvent(ctx, types.EventTypeNotificationReceived, id, req.DerivativeIndex(),
		sdk.NewAttribute(types.AttributeKeyRequestKind, string(req.Kind())),
	)
	k.LogInfo("remote request confirmed", types.Requests, "correlation_id", id, "request", req.String())
	return nil
}

func (k Keeper) applyConfirmed(ctx context.Context, req types.RemoteRequest) error {
	params := k.GetParams(ctx)
	memo := "remote " + string(req.Kind())

	switch r := req.(type) {
	case types.BondRequest:
		if _, found := k.GetStakingLedger(ctx, r.Index); found {
			return types.ErrAlreadyBonded.Wrapf("delegate %d", r.Index)
		}
		k.putLedger(ctx, r.Index, types.NewStakingLedger(types.DelegateAddress(r.Index).String(), r.Amount))
		if err := k.consolidateStake(ctx, r.Amount); err != nil {
			return err
		}
		return k.burnFrom(ctx, types.ModuleAddress(), params.StakingDenom, r.Amount, memo)

	case types.BondExtraRequest:
		err := k.updateLedger(ctx, r.Index, func(ledger *types.StakingLedger) error {
			ledger.BondExtra(r.Amount)
			return nil
		})
		if err != nil {
			return err
		}
		if err := k.consolidateStake(ctx, r.Amount); err != nil {
			return err
		}
		return k.burnFrom(ctx, types.ModuleAddress(), params.StakingDenom, r.Amount, memo)

	case types.UnbondRequest:
		targetEra := k.unbondTargetEra(ctx, params)
		err := k.updateLedger(ctx, r.Index, func(ledger *types.StakingLedger) error {
			return ledger.Unbond(r.Amount, targetEra)
		})
		if err != nil {
			return err
		}
		return k.consolidateUnstake(ctx, r.Amount)

	case types.RebondRequest:
		err := k.updateLedger(ctx, r.Index, func(ledger *types.StakingLedger) error {
			ledger.Rebond(r.Amount)
			return nil
		})
		if err != nil {
			return err
		}
		return k.consolidateStake(ctx, r.Amount)

	case types.WithdrawUnbondedRequest:
		currentEra := k.GetCurrentEra(ctx)
		withdrawn := math.ZeroInt()
		err := k.updateLedger(ctx, r.Index, func(ledger *types.StakingLedger) error {
			withdrawn = ledger.ConsolidateUnlocked(currentEra)
			return nil
		})
		if err != nil {
			return err
		}
		return k.mintTo(ctx, types.ModuleAddress(), params.StakingDenom, withdrawn, memo)

	case types.NominateRequest:
		return nil

	default:
		return types.ErrUnknownRequestKind.Wrapf("%T", req)
	}
}
