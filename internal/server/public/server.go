package public

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstaking/internal/engine"
	"github.com/productscience/liquidstaking/internal/server/middleware"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

type Server struct {
	e      *echo.Echo
	engine *engine.Engine
}

func NewServer(e *engine.Engine) *Server {
	s := &Server{
		e:      middleware.New(),
		engine: e,
	}

	g := s.e.Group("/v1/")

	g.POST("stake", s.postStake)
	g.POST("unstake", s.postUnstake)
	g.POST("unstake/cancel", s.postCancelUnstake)
	g.POST("claim", s.postClaim)
	g.POST("fast-unstake/match", s.postFastMatch)
	g.POST("proofs/era", s.postEraProof)
	g.POST("proofs/ledger", s.postLedgerProof)

	g.GET("summary", s.getSummary)
	g.GET("exchange-rate", s.getExchangeRate)
	g.GET("convert", s.getConvert)
	g.GET("era", s.getEra)
	g.GET("matching-pool", s.getMatchingPool)
	g.GET("ledgers", s.getLedgers)
	g.GET("ledgers/:index", s.getLedger)
	g.GET("unlockings/:address", s.getUnlockings)
	g.GET("fast-unstake", s.getFastUnstakeRequests)
	g.GET("fast-unstake/:address", s.getFastUnstakeRequest)
	g.GET("requests", s.getPendingRequests)
	g.GET("params", s.getParams)
	g.GET("reserves", s.getReserves)
	return s
}

func (s *Server) Start(addr string) {
	go func() {
		if err := s.e.Start(addr); err != nil && err != http.ErrServerClosed {
			logging.Error("Public server stopped", types.Server, "addr", addr, "error", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
