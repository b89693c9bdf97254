package admin

import (
	"errors"
	"net/http"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstaking/internal/engine"
	"github.com/productscience/liquidstaking/internal/journal"
	"github.com/productscience/liquidstaking/x/liquidstaking/keeper"
)

// postTick feeds a remote block by hand, the same way the relay does for
// heights it receives.
func (s *Server) postTick(c echo.Context) error {
	var obs engine.Observation
	if err := c.Bind(&obs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.engine.Tick(obs); err != nil {
		if errors.Is(err, engine.ErrStaleHeight) {
			return ErrStaleHeight
		}
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) getJournal(c echo.Context) error {
	if s.journal == nil {
		return ErrJournalDisabled
	}
	status := journal.StatusFailed
	if v := c.QueryParam("status"); v != "" {
		status = journal.Status(v)
	}
	switch status {
	case journal.StatusSubmitted, journal.StatusConfirmed, journal.StatusFailed:
	default:
		return ErrInvalidStatus
	}

	limit := 100
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return ErrInvalidLimit
		}
		limit = n
	}

	entries, err := s.journal.List(c.Request().Context(), status, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (s *Server) getGenesis(c echo.Context) error {
	genesis, err := s.engine.ExportGenesis()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genesis)
}

type InvariantsResponse struct {
	Broken  bool   `json:"broken"`
	Message string `json:"message"`
}

func (s *Server) getInvariants(c echo.Context) error {
	var resp InvariantsResponse
	err := s.engine.View(func(ctx sdk.Context) error {
		resp.Message, resp.Broken = keeper.AllInvariants(s.engine.Keeper)(ctx)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
