package engine

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

var ErrStaleHeight = errors.New("remote height went backwards")

// Observation is a remote block reported by the relay. StateRoot is empty
// for heights that come without an admitted state snapshot.
type Observation struct {
	Height    uint64 `json:"height"`
	StateRoot []byte `json:"state_root,omitempty"`
}

// Oracle holds the latest remote height and admitted snapshot for the keeper.
type Oracle struct {
	mu       sync.RWMutex
	height   uint64
	snapshot *types.ValidationSnapshot
}

var _ types.BlockHeightOracle = (*Oracle)(nil)

func NewOracle() *Oracle {
	return &Oracle{}
}

// Observe records obs. Heights never move backwards; a repeated height may
// still admit a snapshot.
func (o *Oracle) Observe(obs Observation) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if obs.Height < o.height {
		return errors.Wrapf(ErrStaleHeight, "have %d, got %d", o.height, obs.Height)
	}
	o.height = obs.Height
	if len(obs.StateRoot) > 0 {
		o.snapshot = &types.ValidationSnapshot{Height: obs.Height, StateRoot: obs.StateRoot}
	}
	return nil
}

func (o *Oracle) CurrentHeight(context.Context) uint64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.height
}

func (o *Oracle) LatestSnapshot(context.Context) (types.ValidationSnapshot, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.snapshot == nil {
		return types.ValidationSnapshot{}, false
	}
	return *o.snapshot, true
}

// restore seeds the height committed before a restart. Snapshots are not
// restored; the next observation with a state root admits a new one.
func (o *Oracle) restore(height uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if height > o.height {
		o.height = height
	}
}
