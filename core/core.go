package core

import (
	"context"
	"errors"
	"time"

	"github.com/uptimeventures/jwtgate/validator"
)

// Decoder is the token decode operation the Core delegates to. It must
// verify signature, algorithm and claims atomically and return either a
// complete TokenData or an error. *validator.Validator[T] implements it.
type Decoder[T any] interface {
	Decode(ctx context.Context, token string) (*validator.TokenData[T], error)
}

// Logger defines an optional logging interface for the core middleware.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Core is the framework-agnostic decision engine. It has no knowledge of
// HTTP or gRPC: adapters extract the token string and act on the result.
//
// Core holds only immutable configuration and is safe for concurrent use.
type Core[T any] struct {
	decoder Decoder[T]
	logger  Logger
}

// CheckToken validates a token string and returns the authorization token
// to attach to the request.
//
//   - An empty token is rejected with ErrorCodeTokenMissing (wrapping ErrJWTMissing).
//   - Any decode failure is returned as a *ValidationError whose Code names the case.
//
// Every error returned matches ErrJWTInvalid with errors.Is.
func (c *Core[T]) CheckToken(ctx context.Context, token string) (*AuthorizationToken[T], error) {
	if token == "" {
		if c.logger != nil {
			c.logger.Debug("no token provided")
		}
		return nil, NewValidationError(ErrorCodeTokenMissing, "no token provided", ErrJWTMissing)
	}

	if c.decoder == nil {
		return nil, NewValidationError(ErrorCodeDecoderNotSet, "no decoder configured", nil)
	}

	start := time.Now()
	data, err := c.decoder.Decode(ctx, token)
	duration := time.Since(start)

	if err != nil {
		validationErr := classify(err)
		if c.logger != nil {
			c.logger.Debug("token validation failed",
				"code", validationErr.Code,
				"error", err,
				"duration", duration)
		}
		return nil, validationErr
	}

	if c.logger != nil {
		c.logger.Debug("token validated successfully",
			"alg", data.Header.Algorithm,
			"kid", data.Header.KeyID,
			"duration", duration)
	}

	return &AuthorizationToken[T]{
		Header: data.Header,
		Claims: data.Claims,
	}, nil
}

func classify(err error) *ValidationError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	var code, message string
	switch {
	case errors.Is(err, validator.ErrTokenMalformed):
		code, message = ErrorCodeTokenMalformed, "token is malformed"
	case errors.Is(err, validator.ErrAlgorithmNotAllowed):
		code, message = ErrorCodeInvalidAlgorithm, "signing algorithm not allowed"
	case errors.Is(err, validator.ErrSignatureInvalid):
		code, message = ErrorCodeInvalidSignature, "signature is invalid"
	case errors.Is(err, validator.ErrTokenExpired):
		code, message = ErrorCodeTokenExpired, "token is expired"
	case errors.Is(err, validator.ErrTokenNotValidYet):
		code, message = ErrorCodeTokenNotYetValid, "token is not valid yet"
	case errors.Is(err, validator.ErrInvalidIssuer):
		code, message = ErrorCodeInvalidIssuer, "issuer is invalid"
	case errors.Is(err, validator.ErrInvalidAudience):
		code, message = ErrorCodeInvalidAudience, "audience is invalid"
	default:
		code, message = ErrorCodeInvalidClaims, "claims are invalid"
	}
	return NewValidationError(code, message, err)
}
