package jwtgrpc

import (
	"context"

	"github.com/uptimeventures/jwtgate/core"
)

// GetToken retrieves the token the interceptor stored in ctx.
func GetToken[T any](ctx context.Context) (*core.AuthorizationToken[T], error) {
	return core.GetToken[T](ctx)
}

// GetClaims retrieves claims from the context with type safety using generics.
//
//	claims, err := jwtgrpc.GetClaims[Claims](ctx)
//	if err != nil {
//	    return nil, status.Error(codes.Internal, "failed to get claims")
//	}
func GetClaims[T any](ctx context.Context) (T, error) {
	return core.GetClaims[T](ctx)
}

// HasClaims checks if claims exist in the context.
func HasClaims(ctx context.Context) bool {
	return core.HasToken(ctx)
}
