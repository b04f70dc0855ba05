package jwtgrpc

// Option configures the interceptor. Options never fail: a nil value leaves
// the default in place.
type Option func(*options)

// Logger defines an optional logging interface compatible with log/slog.
// jwtgate.NewLogrusLogger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type options struct {
	tokenExtractor  TokenExtractor
	errorHandler    ErrorHandler
	excludedMethods map[string]bool
	logger          Logger
}

// WithTokenExtractor sets a custom token extractor.
//
// Default: MetadataTokenExtractor
func WithTokenExtractor(extractor TokenExtractor) Option {
	return func(o *options) {
		if extractor != nil {
			o.tokenExtractor = extractor
		}
	}
}

// WithErrorHandler sets a custom error handler.
//
// Default: DefaultErrorHandler
func WithErrorHandler(handler ErrorHandler) Option {
	return func(o *options) {
		if handler != nil {
			o.errorHandler = handler
		}
	}
}

// WithExcludedMethods lists full method names that skip authentication,
// for example "/grpc.health.v1.Health/Check".
func WithExcludedMethods(methods ...string) Option {
	return func(o *options) {
		for _, method := range methods {
			o.excludedMethods[method] = true
		}
	}
}

// WithLogger sets an optional logger for the interceptor.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
