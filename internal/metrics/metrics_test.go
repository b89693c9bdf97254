package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/productscience/liquidstaking/internal/engine"
	testengine "github.com/productscience/liquidstaking/testutil/engine"
	"github.com/productscience/liquidstaking/testutil/sample"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func summary() types.Summary {
	pool := types.NewMatchingLedger()
	pool.TotalStakeAmount.Total = math.NewInt(1500)
	pool.TotalStakeAmount.Locked = math.NewInt(995)
	pool.TotalUnstakeAmount.Total = math.NewInt(300)
	return types.Summary{
		ExchangeRate:      math.LegacyNewDecWithPrec(125, 2),
		Era:               types.EraState{CurrentEra: 7, EraStartBlock: 25200, IsMatched: true},
		MatchingPool:      pool,
		TotalBonded:       math.NewInt(10_000),
		TotalActiveBonded: math.NewInt(9_000),
		TotalUnbonding:    math.NewInt(1_000),
		TotalReserves:     math.NewInt(50),
		PendingRequests:   2,
		LiquidTotalIssued: math.NewInt(8_000),
	}
}

func TestRefresh(t *testing.T) {
	m := New()
	m.Refresh(summary(), 3)

	require.Equal(t, 1.25, testutil.ToFloat64(m.exchangeRate))
	require.Equal(t, 7.0, testutil.ToFloat64(m.currentEra))
	require.Equal(t, 25200.0, testutil.ToFloat64(m.eraStartBlock))
	require.Equal(t, 1.0, testutil.ToFloat64(m.matched))
	require.Equal(t, 1500.0, testutil.ToFloat64(m.pool.WithLabelValues("stake", "total")))
	require.Equal(t, 995.0, testutil.ToFloat64(m.pool.WithLabelValues("stake", "locked")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.pool.WithLabelValues("unstake", "locked")))
	require.Equal(t, 9000.0, testutil.ToFloat64(m.bonded.WithLabelValues("active")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.pendingRequests))
	require.Equal(t, 3.0, testutil.ToFloat64(m.outboxPending))

	next := summary()
	next.Era.IsMatched = false
	m.Refresh(next, 0)
	require.Equal(t, 0.0, testutil.ToFloat64(m.matched))
	require.Equal(t, 0.0, testutil.ToFloat64(m.outboxPending))
}

func TestCounters(t *testing.T) {
	m := New()
	m.ObservePublished(3)
	m.ObservePublished(1)
	m.ObserveConfirmation(types.SuccessOutcome())
	m.ObserveConfirmation(types.FailureOutcome("slashed"))
	m.ObserveConfirmation(types.SuccessOutcome())

	require.Equal(t, 4.0, testutil.ToFloat64(m.published))
	require.Equal(t, 2.0, testutil.ToFloat64(m.confirmations.WithLabelValues("success")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.confirmations.WithLabelValues("failure")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Refresh(summary(), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "lsengine_exchange_rate 1.25")
	require.Contains(t, rec.Body.String(), `lsengine_matching_pool{amount="total",side="stake"} 1500`)
}

func TestFloatRendering(t *testing.T) {
	require.Equal(t, 0.0, intFloat(math.Int{}))
	require.Equal(t, 0.0, decFloat(math.LegacyDec{}))
	require.Equal(t, 1e18, intFloat(math.NewIntWithDecimal(1, 18)))
}

func TestTrack_RefreshesOnCommit(t *testing.T) {
	alice := sample.Account()
	e := testengine.NewEngine(t, nil, testengine.Funded{Address: alice, Amount: 5_000})
	m := New()
	m.Track(e)

	require.NoError(t, e.Execute(func(ctx sdk.Context) error {
		_, err := e.Keeper.Stake(ctx, alice, math.NewInt(2000))
		return err
	}))
	require.Equal(t, 1990.0, testutil.ToFloat64(m.pool.WithLabelValues("stake", "total")))
	require.Equal(t, 10.0, testutil.ToFloat64(m.reserves))
	require.Equal(t, 1990.0, testutil.ToFloat64(m.liquidIssued))
	require.Equal(t, 1.0, testutil.ToFloat64(m.exchangeRate))

	require.NoError(t, e.Tick(engine.Observation{Height: types.DefaultParams().ElectionSolutionStoredOffset}))
	require.Equal(t, 1.0, testutil.ToFloat64(m.outboxPending))
	require.Equal(t, 1.0, testutil.ToFloat64(m.pendingRequests))
	require.Equal(t, 1990.0, testutil.ToFloat64(m.pool.WithLabelValues("stake", "locked")))
}
