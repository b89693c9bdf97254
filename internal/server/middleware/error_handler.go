package middleware

import (
	"errors"
	"net/http"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// TransparentErrorHandler returns handler errors to the client as
//
//	{ "error": "<message>" }
//
// with the status ExtractError picks.
func TransparentErrorHandler(err error, c echo.Context) {
	status, message := ExtractError(err)
	if status >= http.StatusInternalServerError {
		logging.Error("request failed", types.Server, "path", c.Path(), "error", err)
	}

	// Avoid double responses
	if c.Response().Committed {
		return
	}
	_ = c.JSON(status, map[string]interface{}{"error": message})
}

// ExtractError maps err to a status code and message:
//   - *echo.HTTPError keeps its code and message
//   - a congested transport is 503
//   - conflicts with in-flight state are 409
//   - malformed requests are 400
//   - any other registered engine error is 422
//   - everything else is 500
func ExtractError(err error) (int, interface{}) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Message != nil {
			return he.Code, he.Message
		}
		return he.Code, err.Error()
	}

	message := err.Error()
	switch {
	case errors.Is(err, types.ErrTransportCongested):
		return http.StatusServiceUnavailable, message
	case errors.Is(err, sdkerrors.ErrConflict), errors.Is(err, types.ErrStakingLedgerLocked), errors.Is(err, types.ErrOracleBehind):
		return http.StatusConflict, message
	case errors.Is(err, types.ErrInvalidSigner):
		return http.StatusForbidden, message
	case errors.Is(err, sdkerrors.ErrInvalidRequest), errors.Is(err, sdkerrors.ErrInvalidAddress), errors.Is(err, sdkerrors.ErrInvalidCoins),
		errors.Is(err, types.ErrUnknownRequestKind), errors.Is(err, types.ErrInvalidUnstakeProvider):
		return http.StatusBadRequest, message
	}

	codespace, _, _ := errorsmod.ABCIInfo(err, false)
	if codespace == types.ModuleName || codespace == sdkerrors.RootCodespace {
		return http.StatusUnprocessableEntity, message
	}
	return http.StatusInternalServerError, message
}
