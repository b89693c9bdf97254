package metrics

import (
	"net/http"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/productscience/liquidstaking/internal/engine"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

const namespace = "lsengine"

// Metrics exposes the engine's accounting state. Gauges are refreshed from a
// Summary after every commit; counters follow the relay.
type Metrics struct {
	registry *prometheus.Registry

	exchangeRate    prometheus.Gauge
	currentEra      prometheus.Gauge
	eraStartBlock   prometheus.Gauge
	matched         prometheus.Gauge
	pool            *prometheus.GaugeVec
	bonded          *prometheus.GaugeVec
	reserves        prometheus.Gauge
	liquidIssued    prometheus.Gauge
	pendingRequests prometheus.Gauge
	outboxPending   prometheus.Gauge
	published       prometheus.Counter
	confirmations   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		exchangeRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "exchange_rate",
			Help: "Base asset per derivative token.",
		}),
		currentEra: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "current_era",
			Help: "Current remote staking era.",
		}),
		eraStartBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "era_start_block",
			Help: "Remote height at which the current era started.",
		}),
		matched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "era_matched",
			Help: "1 once the current era's matching round ran.",
		}),
		pool: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "matching_pool",
			Help: "Matching pool accumulators.",
		}, []string{"side", "amount"}),
		bonded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "bonded",
			Help: "Base asset across all delegate ledgers.",
		}, []string{"state"}),
		reserves: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "reserves",
			Help: "Protocol reserves held by the module account.",
		}),
		liquidIssued: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "liquid_issued",
			Help: "Derivative token supply.",
		}),
		pendingRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "pending_requests",
			Help: "Remote requests awaiting confirmation.",
		}),
		outboxPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "outbox_pending",
			Help: "Remote requests not yet published to the broker.",
		}),
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "requests_published_total",
			Help: "Remote requests published to the broker.",
		}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "confirmations_total",
			Help: "Confirmations applied, by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.exchangeRate, m.currentEra, m.eraStartBlock, m.matched,
		m.pool, m.bonded, m.reserves, m.liquidIssued,
		m.pendingRequests, m.outboxPending, m.published, m.confirmations,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Refresh sets every gauge from summary and the outbox depth.
func (m *Metrics) Refresh(summary types.Summary, outboxPending int) {
	m.exchangeRate.Set(decFloat(summary.ExchangeRate))
	m.currentEra.Set(float64(summary.Era.CurrentEra))
	m.eraStartBlock.Set(float64(summary.Era.EraStartBlock))
	if summary.Era.IsMatched {
		m.matched.Set(1)
	} else {
		m.matched.Set(0)
	}

	m.pool.WithLabelValues("stake", "total").Set(intFloat(summary.MatchingPool.TotalStakeAmount.Total))
	m.pool.WithLabelValues("stake", "locked").Set(intFloat(summary.MatchingPool.TotalStakeAmount.Locked))
	m.pool.WithLabelValues("unstake", "total").Set(intFloat(summary.MatchingPool.TotalUnstakeAmount.Total))
	m.pool.WithLabelValues("unstake", "locked").Set(intFloat(summary.MatchingPool.TotalUnstakeAmount.Locked))

	m.bonded.WithLabelValues("total").Set(intFloat(summary.TotalBonded))
	m.bonded.WithLabelValues("active").Set(intFloat(summary.TotalActiveBonded))
	m.bonded.WithLabelValues("unbonding").Set(intFloat(summary.TotalUnbonding))

	m.reserves.Set(intFloat(summary.TotalReserves))
	m.liquidIssued.Set(intFloat(summary.LiquidTotalIssued))
	m.pendingRequests.Set(float64(summary.PendingRequests))
	m.outboxPending.Set(float64(outboxPending))
}

// Track refreshes the gauges after every commit of e.
func (m *Metrics) Track(e *engine.Engine) {
	e.OnCommit(func(ctx sdk.Context) {
		pending, err := e.Outbox.Pending(ctx, 0)
		if err != nil {
			logging.Warn("could not read outbox", types.Metrics, "error", err)
		}
		m.Refresh(e.Keeper.GetSummary(ctx), len(pending))
	})
}

func (m *Metrics) ObservePublished(n int) {
	m.published.Add(float64(n))
}

func (m *Metrics) ObserveConfirmation(outcome types.Outcome) {
	if outcome.Success {
		m.confirmations.WithLabelValues("success").Inc()
	} else {
		m.confirmations.WithLabelValues("failure").Inc()
	}
}

// amounts are rendered through decimal; gauges lose precision past 2^53
func intFloat(v math.Int) float64 {
	if v.IsNil() {
		return 0
	}
	return decimal.NewFromBigInt(v.BigInt(), 0).InexactFloat64()
}

func decFloat(v math.LegacyDec) float64 {
	if v.IsNil() {
		return 0
	}
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		logging.Warn("unrenderable decimal", types.Metrics, "value", v.String(), "error", err)
		return 0
	}
	return d.InexactFloat64()
}
