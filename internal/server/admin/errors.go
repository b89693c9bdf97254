package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	ErrJournalDisabled = echo.NewHTTPError(http.StatusNotFound, "Request journal is disabled")
	ErrInvalidStatus   = echo.NewHTTPError(http.StatusBadRequest, "Invalid journal status")
	ErrInvalidLimit    = echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
	ErrStaleHeight     = echo.NewHTTPError(http.StatusConflict, "Remote height went backwards")
)
