package jwtgrpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/metadata"

	"github.com/uptimeventures/jwtgate"
)

// TokenExtractor extracts JWT tokens from gRPC metadata.
type TokenExtractor func(ctx context.Context) (string, error)

// ErrMultipleAuthHeaders indicates multiple authorization metadata entries were provided.
var ErrMultipleAuthHeaders = errors.New("multiple authorization metadata entries are not allowed")

// MetadataTokenExtractor extracts the token from the "authorization"
// metadata key using jwtgate.BearerToken.
//
// gRPC normalizes incoming metadata keys to lowercase, so this extractor only
// checks the lowercase "authorization" key.
func MetadataTokenExtractor(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", nil // No metadata, no token (not an error)
	}

	values := md.Get("authorization")
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		return "", nil
	}
	if len(values) > 1 {
		return "", ErrMultipleAuthHeaders
	}

	return jwtgate.BearerToken(values[0])
}
