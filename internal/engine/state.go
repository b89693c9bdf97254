package engine

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"github.com/pkg/errors"
)

const StoreKey = "engine"

var ObservedHeightKey = collections.NewPrefix(0)

// state is what the engine itself keeps across restarts.
type state struct {
	Schema         collections.Schema
	ObservedHeight collections.Item[uint64]
}

func newState(storeService store.KVStoreService) state {
	sb := collections.NewSchemaBuilder(storeService)
	s := state{
		ObservedHeight: collections.NewItem(sb, ObservedHeightKey, "observed_height", collections.Uint64Value),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	s.Schema = schema
	return s
}

// observedHeight returns the last committed remote height, or false when no
// block was ever observed.
func (s state) observedHeight(ctx context.Context) (uint64, bool, error) {
	height, err := s.ObservedHeight.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return height, true, nil
}
