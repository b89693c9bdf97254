package keeper

import (
	"context"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.params.Get(ctx)
	if err != nil {
		panic(err)
	}
	return params
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.params.Set(ctx, params)
}

func (k Keeper) distributionStrategy(params types.Params) types.DistributionStrategy {
	strategy, err := types.NewDistributionStrategy(params.DistributionStrategy)
	if err != nil {
		// params are validated on write
		panic(err)
	}
	return strategy
}
