package admin

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstaking/internal/engine"
	"github.com/productscience/liquidstaking/internal/journal"
	"github.com/productscience/liquidstaking/internal/metrics"
	"github.com/productscience/liquidstaking/internal/server/middleware"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// Server exposes the authority entry points. It signs every message as the
// engine authority, so it must only listen on an operator network.
type Server struct {
	e       *echo.Echo
	engine  *engine.Engine
	journal *journal.Journal
	metrics *metrics.Metrics
}

// NewServer builds the admin API. journal and m may be nil.
func NewServer(e *engine.Engine, j *journal.Journal, m *metrics.Metrics) *Server {
	s := &Server{
		e:       middleware.New(),
		engine:  e,
		journal: j,
		metrics: m,
	}

	g := s.e.Group("/admin/v1/")

	g.POST("tick", s.postTick)
	g.POST("matching", s.postForceMatching)
	g.POST("era/advance", s.postForceAdvanceEra)
	g.POST("era/start-block", s.postForceSetEraStartBlock)
	g.POST("era/current", s.postForceSetCurrentEra)
	g.POST("ledgers", s.postForceSetStakingLedger)
	g.POST("notifications", s.postNotification)
	g.POST("remote-operations", s.postRemoteOperation)
	g.POST("reserves/reduce", s.postReduceReserves)

	g.PUT("params/commission-rate", s.putCommissionRate)
	g.PUT("params/incentive", s.putIncentive)
	g.PUT("params/staking-ledger-cap", s.putStakingLedgerCap)
	g.PUT("params/reserve-factor", s.putReserveFactor)

	g.GET("journal", s.getJournal)
	g.GET("genesis", s.getGenesis)
	g.GET("invariants", s.getInvariants)

	if m != nil {
		s.e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	return s
}

func (s *Server) Start(addr string) {
	go func() {
		if err := s.e.Start(addr); err != nil && err != http.ErrServerClosed {
			logging.Error("Admin server stopped", types.Server, "addr", addr, "error", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
