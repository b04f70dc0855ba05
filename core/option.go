package core

// Option is a function that configures the Core.
type Option func(*settings)

type settings struct {
	logger Logger
}

// New creates a new Core that delegates decoding to decoder.
//
// Construction never fails. A nil decoder yields a Core that rejects every
// token with ErrorCodeDecoderNotSet.
//
//	v := validator.New[Claims](secret, validator.DefaultPolicy())
//	c := core.New[Claims](v, core.WithLogger(slog.Default()))
//
//	token, err := c.CheckToken(ctx, tokenString)
func New[T any](decoder Decoder[T], opts ...Option) *Core[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return &Core[T]{
		decoder: decoder,
		logger:  s.logger,
	}
}

// WithLogger sets an optional logger for the Core.
//
// When configured, the Core logs each validation attempt with its outcome,
// failure code and duration at debug level. A nil logger is ignored.
func WithLogger(logger Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}
