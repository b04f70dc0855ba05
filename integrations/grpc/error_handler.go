package jwtgrpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorHandler converts a rejection into the error returned to the client.
type ErrorHandler func(error) error

// DefaultErrorHandler answers every rejection with the same
// codes.Unauthenticated status. The reason is logged, never sent.
func DefaultErrorHandler(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(codes.Unauthenticated, "unauthenticated")
}
