package jwtgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uptimeventures/jwtgate"
	"github.com/uptimeventures/jwtgate/core"
)

// New returns a gin.HandlerFunc that runs the rest of the chain only for
// requests the gate admits. Rejected requests are handed to the configured
// error handler, which by default aborts with an empty 401.
//
// The gate must be safe for concurrent use; jwtgate.Gate is.
func New[T any](gate *jwtgate.Gate[T], opts ...Option) gin.HandlerFunc {
	config := &middlewareConfig{
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(config)
	}

	return func(c *gin.Context) {
		admitted, err := gate.Authenticate(c.Request)
		if err != nil {
			config.errorHandler(c, err)
			c.Abort()
			return
		}

		c.Request = admitted
		c.Next()
	}
}

func defaultErrorHandler(c *gin.Context, _ error) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

// GetToken returns the token the gate attached to the request behind c.
func GetToken[T any](c *gin.Context) (*core.AuthorizationToken[T], error) {
	return core.GetToken[T](c.Request.Context())
}

// GetClaims returns the claims the gate attached to the request behind c.
func GetClaims[T any](c *gin.Context) (T, error) {
	return core.GetClaims[T](c.Request.Context())
}
