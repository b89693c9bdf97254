package keeper

// Fakes for the remote side of the engine, kept in memory
import (
	"context"
	"sync"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// SubmittedRequest is a request the fake transport accepted.
type SubmittedRequest struct {
	CorrelationID uint64
	Request       types.RemoteRequest
}

// InMemoryTransport accepts every request and hands out sequential
// correlation ids starting at 1.
type InMemoryTransport struct {
	mu        sync.Mutex
	nextID    uint64
	submitted []SubmittedRequest
	err       error
}

func NewInMemoryTransport() *InMemoryTransport {
	return &InMemoryTransport{nextID: 1}
}

func (t *InMemoryTransport) Submit(_ context.Context, request types.RemoteRequest) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return 0, t.err
	}
	id := t.nextID
	t.nextID++
	t.submitted = append(t.submitted, SubmittedRequest{CorrelationID: id, Request: request})
	return id, nil
}

// FailWith makes every later Submit return err. A nil err restores it.
func (t *InMemoryTransport) FailWith(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
}

// Submitted returns the requests accepted so far, oldest first.
func (t *InMemoryTransport) Submitted() []SubmittedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]SubmittedRequest(nil), t.submitted...)
}

// Drain returns and forgets the requests accepted so far.
func (t *InMemoryTransport) Drain() []SubmittedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.submitted
	t.submitted = nil
	return out
}

// InMemoryOracle reports a settable remote height and snapshot.
type InMemoryOracle struct {
	mu       sync.RWMutex
	height   uint64
	snapshot *types.ValidationSnapshot
}

func NewInMemoryOracle() *InMemoryOracle {
	return &InMemoryOracle{}
}

func (o *InMemoryOracle) CurrentHeight(context.Context) uint64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.height
}

func (o *InMemoryOracle) LatestSnapshot(context.Context) (types.ValidationSnapshot, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.snapshot == nil {
		return types.ValidationSnapshot{}, false
	}
	return *o.snapshot, true
}

func (o *InMemoryOracle) SetHeight(height uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.height = height
}

func (o *InMemoryOracle) SetSnapshot(snapshot types.ValidationSnapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snapshot = &snapshot
}
