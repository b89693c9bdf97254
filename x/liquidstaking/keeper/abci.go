package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// BeginBlocker is the periodic tick. Once the election offset of the current
// era has passed it runs the era's matching round, then advances the era by
// however many whole eras the oracle height has moved. Matching and advance
// are separate transactions: a failed round is logged and never holds the
// era back.
func (k Keeper) BeginBlocker(ctx sdk.Context) {
	params := k.GetParams(ctx)
	height := k.oracle.CurrentHeight(ctx)

	if !k.IsMatchedThisEra(ctx) && k.GetEraStartBlock(ctx)+params.ElectionSolutionStoredOffset <= height {
		if err := k.InTransaction(ctx, k.doMatching); err != nil {
			k.LogError("matching failed", types.Matching, "height", height, "error", err)
		}
	}

	offset := k.EraOffset(ctx, height)
	err := k.InTransaction(ctx, func(ctx sdk.Context) error {
		return k.AdvanceEra(ctx, offset)
	})
	if err != nil {
		k.LogError("could not advance era", types.Era, "offset", offset, "height", height, "error", err)
	}
}

// EndBlocker closes the round: ledgers may be overwritten again and the
// latest admitted external snapshot becomes the root for proofs.
func (k Keeper) EndBlocker(ctx sdk.Context) {
	k.ClearUpdatedLedgers(ctx)

	if snapshot, ok := k.oracle.LatestSnapshot(ctx); ok {
		if err := k.ValidationData.Set(ctx, snapshot); err != nil {
			panic(err)
		}
	}
}

func (k Keeper) doMatching(ctx sdk.Context) error {
	return k.DoMatching(ctx)
}
