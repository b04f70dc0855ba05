package jwtgin

import (
	"github.com/gin-gonic/gin"
)

type middlewareConfig struct {
	errorHandler func(*gin.Context, error)
}

// Option defines a functional option for configuring the middleware
type Option func(*middlewareConfig)

// WithErrorHandler sets the handler called for rejected requests. The chain
// is aborted after it returns whatever it writes.
func WithErrorHandler(handler func(*gin.Context, error)) Option {
	return func(config *middlewareConfig) {
		if handler != nil {
			config.errorHandler = handler
		}
	}
}
