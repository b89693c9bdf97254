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

// GetStakingLedger returns the ledger of the delegate at index, if it was ever bonded.
func (k Keeper) GetStakingLedger(ctx context.Context, index uint16) (types.StakingLedger, bool) {
	ledger, err := k.StakingLedgers.Get(ctx, index)
	if errors.Is(err, collections.ErrNotFound) {
		return types.StakingLedger{}, false
	}
	if err != nil {
		panic(err)
	}
	return ledger, true
}

func (k Keeper) setStakingLedger(ctx context.Context, index uint16, ledger types.StakingLedger) {
	if err := k.StakingLedgers.Set(ctx, index, ledger); err != nil {
		panic(err)
	}
}

func (k Keeper) GetAllStakingLedgers(ctx context.Context) []types.DelegateLedger {
	iter, err := k.StakingLedgers.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()

	var ledgers []types.DelegateLedger
	for ; iter.Valid(); iter.Next() {
		kv, err := iter.KeyValue()
		if err != nil {
			panic(err)
		}
		ledgers = append(ledgers, types.DelegateLedger{Index: kv.Key, Ledger: kv.Value})
	}
	return ledgers
}

func (k Keeper) sumLedgers(ctx context.Context, amount func(types.StakingLedger) math.Int) math.Int {
	sum := math.ZeroInt()
	for _, l := range k.GetAllStakingLedgers(ctx) {
		sum = sum.Add(amount(l.Ledger))
	}
	return sum
}

// GetTotalBonded sums Total over all delegate ledgers.
func (k Keeper) GetTotalBonded(ctx context.Context) math.Int {
	return k.sumLedgers(ctx, func(l types.StakingLedger) math.Int { return l.Total })
}

// GetTotalActiveBonded sums Active over all delegate ledgers.
func (k Keeper) GetTotalActiveBonded(ctx context.Context) math.Int {
	return k.sumLedgers(ctx, func(l types.StakingLedger) math.Int { return l.Active })
}

// GetTotalUnbonding sums the amounts still unlocking across delegates.
func (k Keeper) GetTotalUnbonding(ctx context.Context) math.Int {
	return k.sumLedgers(ctx, func(l types.StakingLedger) math.Int { return l.Unbonding() })
}

// delegateAmounts lists every configured delegate, unbonded ones with zero amounts.
func (k Keeper) delegateAmounts(ctx context.Context, params types.Params) []types.DelegateAmounts {
	out := make([]types.DelegateAmounts, 0, len(params.DerivativeIndexList))
	for _, index := range params.DerivativeIndexList {
		d := types.DelegateAmounts{Index: index, Active: math.ZeroInt(), Total: math.ZeroInt()}
		if ledger, found := k.GetStakingLedger(ctx, index); found {
			d.Active = ledger.Active
			d.Total = ledger.Total
		}
		out = append(out, d)
	}
	return out
}

func (k Keeper) IsLedgerUpdated(ctx context.Context, index uint16) bool {
	updated, err := k.IsUpdated.Has(ctx, index)
	if err != nil {
		panic(err)
	}
	return updated
}

func (k Keeper) markLedgerUpdated(ctx context.Context, index uint16) {
	if err := k.IsUpdated.Set(ctx, index); err != nil {
		panic(err)
	}
}

// ClearUpdatedLedgers opens a new round for ledger overwrites.
func (k Keeper) ClearUpdatedLedgers(ctx context.Context) {
	if err := k.IsUpdated.Clear(ctx, nil); err != nil {
		panic(err)
	}
}

// updateLedger applies fn to an existing ledger, validates the result and
// marks the ledger as updated for this round.
func (k Keeper) updateLedger(ctx context.Context, index uint16, fn func(ledger *types.StakingLedger) error) error {
	ledger, found := k.GetStakingLedger(ctx, index)
	if !found {
		return types.ErrNotBonded.Wrapf("delegate %d", index)
	}
	if err := fn(&ledger); err != nil {
		return err
	}
	if err := ledger.Validate(); err != nil {
		return err
	}
	k.putLedger(ctx, index, ledger)
	return nil
}

func (k Keeper) putLedger(ctx context.Context, index uint16, ledger types.StakingLedger) {
	k.setStakingLedger(ctx, index, ledger)
	k.markLedgerUpdated(ctx, index)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStakingLedgerUpdated,
			sdk.NewAttribute(types.AttributeKeyDerivativeIndex, strconv.FormatUint(uint64(index), 10)),
			sdk.NewAttribute(types.AttributeKeyTotal, ledger.Total.String()),
			sdk.NewAttribute(types.AttributeKeyActive, ledger.Active.String()),
		),
	})
}

// hasPendingRequests reports whether a remote request for index awaits confirmation.
func (k Keeper) hasPendingRequests(ctx context.Context, index uint16) bool {
	found := false
	err := k.RemoteRequests.Walk(ctx, nil, func(_ uint64, req types.RemoteRequest) (bool, error) {
		found = req.DerivativeIndex() == index
		return found, nil
	})
	if err != nil {
		panic(err)
	}
	return found
}
