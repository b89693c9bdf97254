package keeper

import (
	"context"
	"math"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (k Keeper) GetCurrentEra(ctx context.Context) uint32 {
	return getItem(ctx, k.CurrentEra, uint32(0))
}

func (k Keeper) setCurrentEra(ctx context.Context, era uint32) {
	if err := k.CurrentEra.Set(ctx, era); err != nil {
		panic(err)
	}
}

func (k Keeper) GetEraStartBlock(ctx context.Context) uint64 {
	return getItem(ctx, k.EraStartBlock, uint64(0))
}

func (k Keeper) setEraStartBlock(ctx context.Context, height uint64) {
	if err := k.EraStartBlock.Set(ctx, height); err != nil {
		panic(err)
	}
}

// IsMatchedThisEra reports whether a matching round already ran in the current era.
func (k Keeper) IsMatchedThisEra(ctx context.Context) bool {
	return getItem(ctx, k.IsMatched, false)
}

func (k Keeper) setMatched(ctx context.Context, matched bool) {
	if err := k.IsMatched.Set(ctx, matched); err != nil {
		panic(err)
	}
}

// EraOffset is the number of whole eras elapsed at height since the current
// era started. A height at or behind the era start yields zero.
func (k Keeper) EraOffset(ctx context.Context, height uint64) uint32 {
	params := k.GetParams(ctx)
	start := k.GetEraStartBlock(ctx)
	if params.EraLength == 0 || height <= start {
		return 0
	}
	offset := (height - start) / params.EraLength
	if offset > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(offset)
}

// AdvanceEra moves the current era forward by offset and restarts the era
// at the oracle's current height. A zero offset changes nothing. The era
// start never moves backwards, so an oracle that has not yet caught up with
// it is refused.
func (k Keeper) AdvanceEra(ctx context.Context, offset uint32) error {
	if offset == 0 {
		return nil
	}
	current := k.GetCurrentEra(ctx)
	if uint64(current)+uint64(offset) > math.MaxUint32 {
		return types.ErrArithmetic.Wrapf("era %d + %d overflows", current, offset)
	}
	era := current + offset
	height := k.oracle.CurrentHeight(ctx)
	if start := k.GetEraStartBlock(ctx); height < start {
		return types.ErrOracleBehind.Wrapf("height %d, era started at %d", height, start)
	}

	k.setEraStartBlock(ctx, height)
	k.setCurrentEra(ctx, era)

	if err := k.UpdateExchangeRate(ctx); err != nil {
		k.LogError("could not update exchange rate on era advance", types.Era, "era", era, "error", err)
	}
	k.setMatched(ctx, false)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeNewEra,
			sdk.NewAttribute(types.AttributeKeyEra, strconv.FormatUint(uint64(era), 10)),
			sdk.NewAttribute(types.AttributeKeyHeight, strconv.FormatUint(height, 10)),
		),
	})
	k.LogInfo("new era", types.Era, "era", era, "offset", offset, "height", height)
	return nil
}

// ForceSetEraStartBlock overrides the height the current era started at.
func (k Keeper) ForceSetEraStartBlock(ctx context.Context, height uint64) {
	k.setEraStartBlock(ctx, height)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeEraStartBlockUpdated,
			sdk.NewAttribute(types.AttributeKeyHeight, strconv.FormatUint(height, 10)),
		),
	})
}

// ForceSetCurrentEra overrides the era index without restarting the era or
// touching the exchange rate. Matching becomes possible again.
func (k Keeper) ForceSetCurrentEra(ctx context.Context, era uint32) {
	k.setCurrentEra(ctx, era)
	k.setMatched(ctx, false)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeNewEra,
			sdk.NewAttribute(types.AttributeKeyEra, strconv.FormatUint(uint64(era), 10)),
		),
	})
	k.LogWarn("current era forced", types.Era, "era", era)
}

// unbondTargetEra is when a delegate's unbonded funds mature.
func (k Keeper) unbondTargetEra(ctx context.Context, params types.Params) uint32 {
	return k.GetCurrentEra(ctx) + params.BondingDuration
}

// unstakeTargetEra is when a depositor can claim. It trails the delegate
// target by one era so the withdraw of the matching unbond lands first.
func (k Keeper) unstakeTargetEra(ctx context.Context, params types.Params) uint32 {
	return k.unbondTargetEra(ctx, params) + 1
}
