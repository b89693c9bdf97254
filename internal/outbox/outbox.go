package outbox

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"github.com/pkg/errors"

	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

const StoreKey = "outbox"

var (
	SequenceKey = collections.NewPrefix(0)
	EntriesKey  = collections.NewPrefix(1)
)

// Outbox is the remote transport the keeper submits to. Entries are written
// to the same store transaction as the keeper state that produced them, so a
// rolled back operation never leaves a request behind. A publisher drains
// committed entries to the broker.
type Outbox struct {
	maxPending uint64

	Schema   collections.Schema
	Sequence collections.Sequence
	Entries  collections.Map[uint64, types.RemoteRequest]
}

var _ types.RemoteTransport = (*Outbox)(nil)

func New(storeService store.KVStoreService, maxPending uint64) *Outbox {
	sb := collections.NewSchemaBuilder(storeService)
	o := &Outbox{
		maxPending: maxPending,
		Sequence:   collections.NewSequence(sb, SequenceKey, "sequence"),
		Entries:    collections.NewMap(sb, EntriesKey, "entries", collections.Uint64Key, types.RemoteRequestValue),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	o.Schema = schema
	return o
}

// Submit queues request and returns its correlation id. It fails with
// types.ErrTransportCongested once max pending entries wait for the publisher.
func (o *Outbox) Submit(ctx context.Context, request types.RemoteRequest) (uint64, error) {
	pending, err := o.countPending(ctx)
	if err != nil {
		return 0, err
	}
	if pending >= o.maxPending {
		logging.Warn("outbox full", types.Outbox, "pending", pending, "request", request.String())
		return 0, types.ErrTransportCongested.Wrapf("%d requests waiting", pending)
	}
	id, err := o.Sequence.Next(ctx)
	if err != nil {
		return 0, err
	}
	if err := o.Entries.Set(ctx, id, request); err != nil {
		return 0, err
	}
	logging.Debug("request queued", types.Outbox, "correlation_id", id, "request", request.String())
	return id, nil
}

func (o *Outbox) countPending(ctx context.Context) (uint64, error) {
	var n uint64
	err := o.Entries.Walk(ctx, nil, func(uint64, types.RemoteRequest) (bool, error) {
		n++
		return n >= o.maxPending, nil
	})
	return n, err
}

// Pending returns up to limit queued entries in correlation id order. A zero
// limit returns all of them.
func (o *Outbox) Pending(ctx context.Context, limit int) ([]types.PendingRequest, error) {
	var entries []types.PendingRequest
	err := o.Entries.Walk(ctx, nil, func(id uint64, req types.RemoteRequest) (bool, error) {
		entries = append(entries, types.PendingRequest{CorrelationID: id, Request: req})
		return limit > 0 && len(entries) >= limit, nil
	})
	return entries, err
}

// Remove drops published entries. Unknown ids are ignored.
func (o *Outbox) Remove(ctx context.Context, ids ...uint64) error {
	for _, id := range ids {
		if err := o.Entries.Remove(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// GenesisState is the outbox part of the engine's genesis document.
type GenesisState struct {
	Sequence uint64                 `json:"sequence"`
	Entries  []types.PendingRequest `json:"entries"`
}

func (o *Outbox) InitGenesis(ctx context.Context, gs GenesisState) error {
	for _, e := range gs.Entries {
		if e.CorrelationID >= gs.Sequence {
			return errors.Errorf("outbox entry %d is not below sequence %d", e.CorrelationID, gs.Sequence)
		}
		if err := o.Entries.Set(ctx, e.CorrelationID, e.Request); err != nil {
			return err
		}
	}
	return o.Sequence.Set(ctx, gs.Sequence)
}

func (o *Outbox) ExportGenesis(ctx context.Context) (GenesisState, error) {
	seq, err := o.Sequence.Peek(ctx)
	if err != nil {
		return GenesisState{}, err
	}
	entries, err := o.Pending(ctx, 0)
	if err != nil {
		return GenesisState{}, err
	}
	if entries == nil {
		entries = []types.PendingRequest{}
	}
	return GenesisState{Sequence: seq, Entries: entries}, nil
}
