package public

import (
	"net/http"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// query runs read on committed state and writes its result as JSON.
func query[T any](s *Server, c echo.Context, read func(ctx sdk.Context) (T, error)) error {
	var out T
	err := s.engine.View(func(ctx sdk.Context) error {
		var err error
		out, err = read(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func addressParam(c echo.Context) (sdk.AccAddress, error) {
	addr, err := sdk.AccAddressFromBech32(c.Param("address"))
	if err != nil {
		return nil, ErrInvalidAddress
	}
	return addr, nil
}

func (s *Server) getSummary(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) (types.Summary, error) {
		return s.engine.Keeper.GetSummary(ctx), nil
	})
}

type ExchangeRateResponse struct {
	ExchangeRate math.LegacyDec `json:"exchange_rate"`
}

func (s *Server) getExchangeRate(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) (ExchangeRateResponse, error) {
		return ExchangeRateResponse{ExchangeRate: s.engine.Keeper.GetExchangeRate(ctx)}, nil
	})
}

type ConvertResponse struct {
	Staking math.Int `json:"staking"`
	Liquid  math.Int `json:"liquid"`
}

// getConvert converts ?staking=<amount> to derivative units or
// ?liquid=<amount> to staking units at the current rate.
func (s *Server) getConvert(c echo.Context) error {
	staking, liquid := c.QueryParam("staking"), c.QueryParam("liquid")
	if (staking == "") == (liquid == "") {
		return ErrConvertAmount
	}
	raw := staking + liquid
	amount, ok := math.NewIntFromString(raw)
	if !ok || amount.IsNegative() {
		return ErrInvalidAmount
	}

	return query(s, c, func(ctx sdk.Context) (ConvertResponse, error) {
		if staking != "" {
			out, err := s.engine.Keeper.StakingToLiquid(ctx, amount)
			return ConvertResponse{Staking: amount, Liquid: out}, err
		}
		out, err := s.engine.Keeper.LiquidToStaking(ctx, amount)
		return ConvertResponse{Staking: out, Liquid: amount}, err
	})
}

func (s *Server) getEra(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) (types.EraState, error) {
		return s.engine.Keeper.GetEraState(ctx), nil
	})
}

func (s *Server) getMatchingPool(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) (types.MatchingLedger, error) {
		return s.engine.Keeper.GetMatchingPool(ctx), nil
	})
}

func (s *Server) getLedgers(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) ([]types.DelegateLedger, error) {
		return s.engine.Keeper.GetAllStakingLedgers(ctx), nil
	})
}

func (s *Server) getLedger(c echo.Context) error {
	index, err := strconv.ParseUint(c.Param("index"), 10, 16)
	if err != nil {
		return ErrInvalidIndex
	}
	return query(s, c, func(ctx sdk.Context) (types.StakingLedger, error) {
		ledger, found := s.engine.Keeper.GetStakingLedger(ctx, uint16(index))
		if !found {
			return ledger, ErrLedgerNotFound
		}
		return ledger, nil
	})
}

func (s *Server) getUnlockings(c echo.Context) error {
	addr, err := addressParam(c)
	if err != nil {
		return err
	}
	return query(s, c, func(ctx sdk.Context) (types.UnlockChunks, error) {
		chunks, found := s.engine.Keeper.GetUnlockings(ctx, addr)
		if !found {
			return nil, ErrUnlockingsNotFound
		}
		return chunks, nil
	})
}

func (s *Server) getFastUnstakeRequests(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) ([]types.FastUnstakeRequest, error) {
		return s.engine.Keeper.GetAllFastUnstakeRequests(ctx), nil
	})
}

func (s *Server) getFastUnstakeRequest(c echo.Context) error {
	addr, err := addressParam(c)
	if err != nil {
		return err
	}
	return query(s, c, func(ctx sdk.Context) (types.FastUnstakeRequest, error) {
		amount, found := s.engine.Keeper.GetFastUnstakeRequest(ctx, addr)
		if !found {
			return types.FastUnstakeRequest{}, ErrFastUnstakeMissing
		}
		return types.FastUnstakeRequest{Account: addr.String(), Amount: amount}, nil
	})
}

func (s *Server) getPendingRequests(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) ([]types.PendingRequest, error) {
		return s.engine.Keeper.GetAllPendingRequests(ctx), nil
	})
}

func (s *Server) getParams(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) (types.Params, error) {
		return s.engine.Keeper.GetParams(ctx), nil
	})
}

type ReservesResponse struct {
	TotalReserves math.Int `json:"total_reserves"`
}

func (s *Server) getReserves(c echo.Context) error {
	return query(s, c, func(ctx sdk.Context) (ReservesResponse, error) {
		return ReservesResponse{TotalReserves: s.engine.Keeper.GetTotalReserves(ctx)}, nil
	})
}
