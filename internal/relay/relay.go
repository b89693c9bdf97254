package relay

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/productscience/liquidstaking/apiconfig"
	"github.com/productscience/liquidstaking/internal/engine"
	"github.com/productscience/liquidstaking/internal/journal"
	"github.com/productscience/liquidstaking/internal/metrics"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

const (
	publishBatch    = 64
	publishInterval = 5 * time.Second
)

// Confirmation is the remote system's report on a published request.
type Confirmation struct {
	CorrelationID uint64 `json:"correlation_id"`
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
}

// Relay connects the engine to the broker: it publishes committed outbox
// entries and applies confirmations and remote heights as they arrive.
type Relay struct {
	engine  *engine.Engine
	js      nats.JetStreamContext
	conf    apiconfig.RelayConfig
	journal *journal.Journal
	metrics *metrics.Metrics
	wake    chan struct{}
}

// New wires a relay to e. journal and metrics may be nil.
func New(e *engine.Engine, js nats.JetStreamContext, conf apiconfig.RelayConfig, j *journal.Journal, m *metrics.Metrics) *Relay {
	r := &Relay{
		engine:  e,
		js:      js,
		conf:    conf,
		journal: j,
		metrics: m,
		wake:    make(chan struct{}, 1),
	}
	e.OnCommit(func(sdk.Context) { r.Wake() })
	return r
}

// EnsureStream creates the relay's stream over all three subjects.
func EnsureStream(js nats.JetStreamContext, conf apiconfig.RelayConfig) error {
	_, err := js.AddStream(&nats.StreamConfig{
		Name:       conf.Stream,
		Subjects:   []string{conf.RequestSubject, conf.ConfirmationSubject, conf.HeightSubject},
		Storage:    nats.FileStorage,
		Duplicates: 10 * time.Minute,
	})
	if err != nil && !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		return errors.Wrap(err, "failed to add stream "+conf.Stream)
	}
	return nil
}

// Wake asks the publisher to drain the outbox.
func (r *Relay) Wake() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Run subscribes to confirmations and heights and publishes the outbox until
// ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	subs, err := r.subscribe()
	if err != nil {
		return err
	}
	defer func() {
		for _, sub := range subs {
			_ = sub.Drain()
		}
	}()

	ticker := time.NewTicker(publishInterval)
	defer ticker.Stop()
	r.Wake()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.wake:
		case <-ticker.C:
		}
		if _, err := r.PublishAll(ctx); err != nil {
			logging.Error("failed to publish outbox", types.Messages, "error", err)
		}
	}
}

func (r *Relay) subscribe() ([]*nats.Subscription, error) {
	confirmations, err := r.js.Subscribe(r.conf.ConfirmationSubject, r.HandleConfirmation,
		nats.Durable(r.conf.Durable+"-confirmations"), nats.ManualAck(), nats.DeliverAll())
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to confirmations")
	}
	heights, err := r.js.Subscribe(r.conf.HeightSubject, r.HandleHeight,
		nats.Durable(r.conf.Durable+"-heights"), nats.ManualAck(), nats.DeliverAll())
	if err != nil {
		_ = confirmations.Unsubscribe()
		return nil, errors.Wrap(err, "failed to subscribe to heights")
	}
	return []*nats.Subscription{confirmations, heights}, nil
}

// PublishAll drains the outbox in batches and returns how many entries left it.
func (r *Relay) PublishAll(ctx context.Context) (int, error) {
	total := 0
	for {
		n, err := r.publishBatch(ctx)
		total += n
		if err != nil || n < publishBatch {
			return total, err
		}
	}
}

func (r *Relay) publishBatch(ctx context.Context) (int, error) {
	var entries []types.PendingRequest
	err := r.engine.View(func(sdkCtx sdk.Context) error {
		var err error
		entries, err = r.engine.Outbox.Pending(sdkCtx, publishBatch)
		return err
	})
	if err != nil || len(entries) == 0 {
		return 0, err
	}

	published := make([]uint64, 0, len(entries))
	for _, entry := range entries {
		if err := r.publish(ctx, entry); err != nil {
			logging.Warn("publish stopped", types.Messages, "correlation_id", entry.CorrelationID, "error", err)
			break
		}
		published = append(published, entry.CorrelationID)
	}
	if len(published) == 0 {
		return 0, errors.New("broker refused the oldest outbox entry")
	}

	// entries that are published but not yet removed are published again
	// after a restart; the broker drops them by message id
	err = r.engine.Execute(func(sdkCtx sdk.Context) error {
		return r.engine.Outbox.Remove(sdkCtx, published...)
	})
	if err != nil {
		return 0, err
	}
	if r.metrics != nil {
		r.metrics.ObservePublished(len(published))
	}
	return len(published), nil
}

func (r *Relay) publish(ctx context.Context, entry types.PendingRequest) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	// journaled first, a confirmation may arrive before Publish returns
	if r.journal != nil {
		if err := r.journal.Submitted(ctx, entry); err != nil {
			logging.Error("failed to journal submission", types.Journal, "correlation_id", entry.CorrelationID, "error", err)
		}
	}
	msgID := strconv.FormatUint(entry.CorrelationID, 10)
	if _, err := r.js.Publish(r.conf.RequestSubject, data, nats.MsgId(msgID), nats.Context(ctx)); err != nil {
		return err
	}
	logging.Debug("request published", types.Messages, "correlation_id", entry.CorrelationID, "request", entry.Request.String())
	return nil
}

// HandleConfirmation applies a confirmation. Malformed or inapplicable
// confirmations are terminated so they are not redelivered.
func (r *Relay) HandleConfirmation(msg *nats.Msg) {
	var c Confirmation
	if err := json.Unmarshal(msg.Data, &c); err != nil {
		logging.Error("malformed confirmation", types.Messages, "error", err, "data", string(msg.Data))
		_ = msg.Term()
		return
	}
	outcome := types.Outcome{Success: c.Success, Error: c.Error}
	err := r.engine.Execute(func(ctx sdk.Context) error {
		return r.engine.Keeper.OnConfirmation(ctx, c.CorrelationID, outcome)
	})
	if err != nil {
		logging.Error("confirmation rejected", types.Requests, "correlation_id", c.CorrelationID, "error", err)
		_ = msg.Term()
		return
	}

	if r.journal != nil {
		if err := r.journal.Resolved(context.Background(), c.CorrelationID, outcome); err != nil {
			logging.Error("failed to journal outcome", types.Journal, "correlation_id", c.CorrelationID, "error", err)
		}
	}
	if r.metrics != nil {
		r.metrics.ObserveConfirmation(outcome)
	}
	if err := msg.Ack(); err != nil {
		logging.Warn("confirmation ack failed", types.Messages, "correlation_id", c.CorrelationID, "error", err)
	}
}

// HandleHeight runs the engine tick at a reported remote height.
func (r *Relay) HandleHeight(msg *nats.Msg) {
	var obs engine.Observation
	if err := json.Unmarshal(msg.Data, &obs); err != nil {
		logging.Error("malformed height", types.Messages, "error", err, "data", string(msg.Data))
		_ = msg.Term()
		return
	}
	err := r.engine.Tick(obs)
	switch {
	case errors.Is(err, engine.ErrStaleHeight):
		logging.Debug("stale height", types.Era, "height", obs.Height)
	case err != nil:
		logging.Error("tick failed", types.Era, "height", obs.Height, "error", err)
		_ = msg.Nak()
		return
	}
	_ = msg.Ack()
}
