package jwtecho

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type middlewareConfig struct {
	errorHandler func(echo.Context, error) error
	skipper      middleware.Skipper
}

// Option is a function that configures the middleware
type Option func(*middlewareConfig)

// WithErrorHandler sets the handler that answers rejected requests. Its
// return value is returned from the middleware.
func WithErrorHandler(handler func(echo.Context, error) error) Option {
	return func(config *middlewareConfig) {
		if handler != nil {
			config.errorHandler = handler
		}
	}
}

// WithSkipper lets requests for which skipper returns true through without
// authentication.
func WithSkipper(skipper middleware.Skipper) Option {
	return func(config *middlewareConfig) {
		config.skipper = skipper
	}
}
