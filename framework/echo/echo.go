package jwtecho

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uptimeventures/jwtgate"
	"github.com/uptimeventures/jwtgate/core"
)

// New returns an echo.MiddlewareFunc that calls next only for requests the
// gate admits. Rejected requests go to the configured error handler, which
// by default answers with an empty 401.
func New[T any](gate *jwtgate.Gate[T], opts ...Option) echo.MiddlewareFunc {
	config := &middlewareConfig{
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(config)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.skipper != nil && config.skipper(c) {
				return next(c)
			}

			admitted, err := gate.Authenticate(c.Request())
			if err != nil {
				return config.errorHandler(c, err)
			}

			c.SetRequest(admitted)
			return next(c)
		}
	}
}

func defaultErrorHandler(c echo.Context, _ error) error {
	return c.NoContent(http.StatusUnauthorized)
}

// GetToken returns the token the gate attached to the request behind c.
func GetToken[T any](c echo.Context) (*core.AuthorizationToken[T], error) {
	return core.GetToken[T](c.Request().Context())
}

// GetClaims returns the claims the gate attached to the request behind c.
func GetClaims[T any](c echo.Context) (T, error) {
	return core.GetClaims[T](c.Request().Context())
}
