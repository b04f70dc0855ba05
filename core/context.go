package core

import (
	"context"

	"github.com/uptimeventures/jwtgate/validator"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	tokenKey contextKey = iota
)

// AuthorizationToken is the request-scoped authorization context: the
// decoded claims plus the header metadata of the token that carried them.
// It only exists on requests the gate admitted.
type AuthorizationToken[T any] struct {
	Header validator.Header
	Claims T
}

// SetToken stores the authorization token in the context.
// This is a helper for adapters to call once a token has been admitted.
func SetToken[T any](ctx context.Context, token *AuthorizationToken[T]) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// GetToken retrieves the authorization token from the context with type
// safety. T must be the claims type the gate was built with.
//
//	token, err := core.GetToken[Claims](ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(token.Header.KeyID, token.Claims.Subject)
func GetToken[T any](ctx context.Context) (*AuthorizationToken[T], error) {
	val := ctx.Value(tokenKey)
	if val == nil {
		return nil, ErrClaimsNotFound
	}

	token, ok := val.(*AuthorizationToken[T])
	if !ok || token == nil {
		return nil, NewValidationError(
			ErrorCodeClaimsNotFound,
			"claims type assertion failed",
			nil,
		)
	}

	return token, nil
}

// MustGetToken is GetToken that panics when no token is present. Use only
// where an admitting gate has already run.
func MustGetToken[T any](ctx context.Context) *AuthorizationToken[T] {
	token, err := GetToken[T](ctx)
	if err != nil {
		panic(err)
	}
	return token
}

// GetClaims is GetToken without the header metadata.
func GetClaims[T any](ctx context.Context) (T, error) {
	token, err := GetToken[T](ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return token.Claims, nil
}

// HasToken checks if an authorization token exists in the context without retrieving it.
func HasToken(ctx context.Context) bool {
	return ctx.Value(tokenKey) != nil
}
