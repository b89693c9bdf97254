package public

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstaking/internal/engine"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// deliver binds the request body into a fresh M and runs it through handler.
func deliver[M any, R any](s *Server, c echo.Context, handler func(context.Context, *M) (R, error)) error {
	msg := new(M)
	if err := c.Bind(msg); err != nil {
		logging.Debug("Unable to bind message", types.Messages, "path", c.Path(), "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := engine.Deliver(s.engine, msg, handler)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) postStake(c echo.Context) error {
	return deliver(s, c, s.engine.MsgServer.Stake)
}

func (s *Server) postUnstake(c echo.Context) error {
	return deliver(s, c, s.engine.MsgServer.Unstake)
}

func (s *Server) postCancelUnstake(c echo.Context) error {
	return deliver(s, c, s.engine.MsgServer.CancelUnstake)
}

func (s *Server) postClaim(c echo.Context) error {
	return deliver(s, c, s.engine.MsgServer.ClaimFor)
}

func (s *Server) postFastMatch(c echo.Context) error {
	return deliver(s, c, s.engine.MsgServer.FastMatchUnstake)
}

func (s *Server) postEraProof(c echo.Context) error {
	return deliver(s, c, s.engine.MsgServer.SetCurrentEra)
}

func (s *Server) postLedgerProof(c echo.Context) error {
	return deliver(s, c, s.engine.MsgServer.SetStakingLedger)
}
