package admin

import (
	"context"
	"net/http"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstaking/internal/engine"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// deliver binds the body into a fresh M, signs it as the engine authority
// through sign and runs it.
func deliver[M any](s *Server, c echo.Context, sign func(msg *M, authority string), handler func(context.Context, *M) (*types.MsgAdminResponse, error)) error {
	msg := new(M)
	if err := c.Bind(msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sign(msg, s.engine.Keeper.GetAuthority())
	if _, err := engine.Deliver(s.engine, msg, handler); err != nil {
		return err
	}
	logging.Info("Admin message delivered", types.Server, "path", c.Path())
	return c.NoContent(http.StatusOK)
}

func (s *Server) postForceMatching(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgForceMatching, a string) { msg.Authority = a }, s.engine.MsgServer.ForceMatching)
}

func (s *Server) postForceAdvanceEra(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgForceAdvanceEra, a string) { msg.Authority = a }, s.engine.MsgServer.ForceAdvanceEra)
}

func (s *Server) postForceSetEraStartBlock(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgForceSetEraStartBlock, a string) { msg.Authority = a }, s.engine.MsgServer.ForceSetEraStartBlock)
}

func (s *Server) postForceSetCurrentEra(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgForceSetCurrentEra, a string) { msg.Authority = a }, s.engine.MsgServer.ForceSetCurrentEra)
}

func (s *Server) postForceSetStakingLedger(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgForceSetStakingLedger, a string) { msg.Authority = a }, s.engine.MsgServer.ForceSetStakingLedger)
}

// postNotification applies a confirmation by hand, for outcomes the relay
// could not deliver. The request is dropped from the outbox in the same
// transaction so it is never published afterwards.
func (s *Server) postNotification(c echo.Context) error {
	msg := new(types.MsgNotificationReceived)
	if err := c.Bind(msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	msg.Authority = s.engine.Keeper.GetAuthority()

	err := s.engine.Execute(func(ctx sdk.Context) error {
		if _, err := s.engine.MsgServer.NotificationReceived(ctx, msg); err != nil {
			return err
		}
		return s.engine.Outbox.Remove(ctx, msg.CorrelationID)
	})
	if err != nil {
		return err
	}
	if s.journal != nil {
		if jerr := s.journal.Resolved(c.Request().Context(), msg.CorrelationID, msg.Outcome); jerr != nil {
			logging.Warn("Unable to journal manual confirmation", types.Journal, "correlation_id", msg.CorrelationID, "error", jerr)
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveConfirmation(msg.Outcome)
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) postRemoteOperation(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgRemoteOperation, a string) { msg.Authority = a }, s.engine.MsgServer.RemoteOperation)
}

func (s *Server) postReduceReserves(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgReduceReserves, a string) { msg.Authority = a }, s.engine.MsgServer.ReduceReserves)
}

func (s *Server) putCommissionRate(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgUpdateCommissionRate, a string) { msg.Authority = a }, s.engine.MsgServer.UpdateCommissionRate)
}

func (s *Server) putIncentive(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgUpdateIncentive, a string) { msg.Authority = a }, s.engine.MsgServer.UpdateIncentive)
}

func (s *Server) putReserveFactor(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgUpdateReserveFactor, a string) { msg.Authority = a }, s.engine.MsgServer.UpdateReserveFactor)
}

func (s *Server) putStakingLedgerCap(c echo.Context) error {
	return deliver(s, c, func(msg *types.MsgUpdateStakingLedgerCap, a string) { msg.Authority = a }, s.engine.MsgServer.UpdateStakingLedgerCap)
}
