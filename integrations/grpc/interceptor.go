package jwtgrpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/uptimeventures/jwtgate/core"
	"github.com/uptimeventures/jwtgate/validator"
)

// Interceptor provides JWT authentication for gRPC servers. T is the claims
// type handlers read back with GetClaims.
type Interceptor[T any] struct {
	core            *core.Core[T]
	tokenExtractor  TokenExtractor
	errorHandler    ErrorHandler
	excludedMethods map[string]bool
	logger          Logger
}

// New creates an interceptor verifying tokens with secret under policy.
// Construction never fails.
func New[T any](secret []byte, policy validator.Policy, opts ...Option) *Interceptor[T] {
	o := options{
		tokenExtractor:  MetadataTokenExtractor,
		errorHandler:    DefaultErrorHandler,
		excludedMethods: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var coreOpts []core.Option
	if o.logger != nil {
		coreOpts = append(coreOpts, core.WithLogger(o.logger))
	}

	return &Interceptor[T]{
		core:            core.New[T](validator.New[T](secret, policy), coreOpts...),
		tokenExtractor:  o.tokenExtractor,
		errorHandler:    o.errorHandler,
		excludedMethods: o.excludedMethods,
		logger:          o.logger,
	}
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that runs
// handler only for authenticated calls.
func (i *Interceptor[T]) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if i.excluded(info.FullMethod) {
			return handler(ctx, req)
		}

		authenticated, err := i.authenticate(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}

		return handler(authenticated, req)
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that runs
// handler only for authenticated streams.
func (i *Interceptor[T]) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.excluded(info.FullMethod) {
			return handler(srv, ss)
		}

		authenticated, err := i.authenticate(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}

		return handler(srv, &wrappedServerStream{
			ServerStream: ss,
			ctx:          authenticated,
		})
	}
}

func (i *Interceptor[T]) excluded(method string) bool {
	if !i.excludedMethods[method] {
		return false
	}
	if i.logger != nil {
		i.logger.Debug("skipping JWT validation for excluded method", "method", method)
	}
	return true
}

func (i *Interceptor[T]) authenticate(ctx context.Context, method string) (context.Context, error) {
	raw, err := i.tokenExtractor(ctx)
	if err != nil {
		err = core.NewValidationError(core.ErrorCodeHeaderMalformed, "error extracting token", err)
		i.reject(method, err)
		return nil, i.errorHandler(err)
	}

	token, err := i.core.CheckToken(ctx, raw)
	if err != nil {
		i.reject(method, err)
		return nil, i.errorHandler(err)
	}

	return core.SetToken(ctx, token), nil
}

func (i *Interceptor[T]) reject(method string, err error) {
	if i.logger != nil {
		i.logger.Warn("call rejected",
			"reason", core.ErrorCode(err),
			"error", err,
			"method", method)
	}
}

// wrappedServerStream wraps grpc.ServerStream with a custom context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context with JWT claims.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
