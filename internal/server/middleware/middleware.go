package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

const RequestIDHeader = echo.HeaderXRequestID

// RequestIDMiddleware tags every request with an id, keeping one the client sent.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Response().Header().Set(RequestIDHeader, id)
		return next(c)
	}
}

func LoggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logging.Info("Received request", types.Server, "method", req.Method, "path", req.URL.Path, "request_id", c.Get(RequestIDHeader))
		logging.Debug("Request headers", types.Server, "headers", req.Header)
		return next(c)
	}
}

// New returns an echo instance with the shared error handler and middleware.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = TransparentErrorHandler
	e.Use(RequestIDMiddleware, LoggingMiddleware)
	return e
}
