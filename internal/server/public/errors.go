package public

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	ErrInvalidAddress     = echo.NewHTTPError(http.StatusBadRequest, "Invalid address")
	ErrInvalidIndex       = echo.NewHTTPError(http.StatusBadRequest, "Invalid derivative index")
	ErrInvalidAmount      = echo.NewHTTPError(http.StatusBadRequest, "Invalid amount")
	ErrConvertAmount      = echo.NewHTTPError(http.StatusBadRequest, "Exactly one of staking or liquid is required")
	ErrLedgerNotFound     = echo.NewHTTPError(http.StatusNotFound, "Staking ledger not found")
	ErrUnlockingsNotFound = echo.NewHTTPError(http.StatusNotFound, "No unlockings for account")
	ErrFastUnstakeMissing = echo.NewHTTPError(http.StatusNotFound, "No fast unstake request for account")
)
