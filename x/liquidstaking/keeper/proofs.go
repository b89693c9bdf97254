package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// verifyRemoteState checks value under key against the state root of the
// latest admitted snapshot.
func (k Keeper) verifyRemoteState(ctx context.Context, key string, value, proof []byte) error {
	snapshot, found := k.GetValidationData(ctx)
	if !found {
		return types.ErrNoValidationSnapshot
	}
	if err := k.proofVerifier.VerifyMembership(snapshot.StateRoot, types.RemoteStakingStoreKey, key, value, proof); err != nil {
		return types.ErrInvalidProof.Wrapf("%s at height %d: %s", key, snapshot.Height, err)
	}
	return nil
}

// SetCurrentEraWithProof advances to a proven remote era. Submitters that
// move the era forward receive the incentive.
func (k Keeper) SetCurrentEraWithProof(ctx context.Context, submitter sdk.AccAddress, era uint32, proof []byte) error {
	current := k.GetCurrentEra(ctx)
	var offset uint32
	if era > current {
		offset = era - current
	}
	if err := k.verifyRemoteState(ctx, types.RemoteCurrentEraKey, types.EraProofValue(era), proof); err != nil {
		return err
	}
	if err := k.AdvanceEra(ctx, offset); err != nil {
		return err
	}
	if offset > 0 {
		k.payIncentive(ctx, submitter)
	}
	return nil
}

// SetStakingLedgerWithProof replaces a delegate ledger with its proven remote
// state. Rewards accrued since the last update inflate the derivative supply
// by the protocol commission.
func (k Keeper) SetStakingLedgerWithProof(ctx context.Context, submitter sdk.AccAddress, index uint16, ledger types.StakingLedger, proof []byte) error {
	params := k.GetParams(ctx)
	if err := k.ensureDerivativeIndex(params, index); err != nil {
		return err
	}
	if err := ledger.Validate(); err != nil {
		return err
	}
	if k.IsLedgerUpdated(ctx, index) {
		return types.ErrStakingLedgerLocked.Wrapf("delegate %d was updated this round", index)
	}
	old, found := k.GetStakingLedger(ctx, index)
	if !found {
		return types.ErrNotBonded.Wrapf("delegate %d", index)
	}

	if ledger.Total.LT(old.Total) || ledger.Active.LT(old.Active) || !ledger.Unlocking.Equal(old.Unlocking) || k.hasPendingRequests(ctx, index) {
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeNonIdealStakingLedger,
				sdk.NewAttribute(types.AttributeKeyDerivativeIndex, strconv.FormatUint(uint64(index), 10)),
			),
		})
		k.LogWarn("non ideal staking ledger", types.Proofs, "index", index,
			"old_total", old.Total.String(), "new_total", ledger.Total.String())
	}

	value, err := types.StakingLedgerProofValue(ledger)
	if err != nil {
		return err
	}
	if err := k.verifyRemoteState(ctx, types.RemoteStakingLedgerKey(index), value, proof); err != nil {
		return err
	}

	if rewards := ledger.Total.Sub(old.Total); rewards.IsPositive() {
		if err := k.inflateCommission(ctx, params, rewards); err != nil {
			return err
		}
	}
	k.putLedger(ctx, index, ledger)
	k.payIncentive(ctx, submitter)
	return nil
}

// inflateCommission mints the protocol's commission on rewards as derivative
// tokens to the fee receiver.
func (k Keeper) inflateCommission(ctx context.Context, params types.Params, rewards math.Int) error {
	pool := k.GetMatchingPool(ctx)
	totalStake := k.GetTotalActiveBonded(ctx).Add(pool.TotalStakeAmount.Total).Sub(pool.TotalUnstakeAmount.Total)
	if totalStake.IsNegative() {
		return types.ErrArithmetic.Wrapf("unstake total exceeds active bonded and staked amounts")
	}
	amount, err := types.CommissionInflation(k.totalIssuance(ctx, params.LiquidDenom), totalStake, rewards, params.CommissionRate)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}
	k.LogInfo("commission inflation", types.Proofs, "rewards", rewards.String(), "minted", amount.String())
	return k.mintTo(ctx, params.FeeReceiver(), params.LiquidDenom, amount, "commission")
}

// payIncentive is best effort: an empty incentive pool never fails the proof.
func (k Keeper) payIncentive(ctx context.Context, submitter sdk.AccAddress) {
	params := k.GetParams(ctx)
	if params.Incentive.IsZero() {
		return
	}
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := k.payFromModule(cacheCtx, submitter, params.NativeDenom, params.Incentive, "incentive"); err != nil {
		k.LogWarn("could not pay incentive", types.Proofs, "submitter", submitter.String(), "error", err)
		return
	}
	write()
}
