package jwtgate

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/uptimeventures/jwtgate/validator"
)

// Option configures the Gate. Options never fail: a nil or empty value
// leaves the default in place.
type Option func(*options)

// ExclusionURLHandler is a function that takes in a http.Request and returns
// true if the request should be excluded from JWT validation.
type ExclusionURLHandler func(r *http.Request) bool

type options struct {
	policy              validator.Policy
	errorHandler        ErrorHandler
	tokenExtractor      TokenExtractor
	validateOnOptions   bool
	exclusionURLHandler ExclusionURLHandler
	logger              Logger
	tracerProvider      trace.TracerProvider
	registerer          prometheus.Registerer
	requestIDHeader     string
}

func defaultOptions() options {
	return options{
		policy:            validator.DefaultPolicy(),
		errorHandler:      DefaultErrorHandler,
		tokenExtractor:    AuthHeaderTokenExtractor,
		validateOnOptions: true,
		requestIDHeader:   "X-Request-Id",
	}
}

// WithPolicy replaces the whole validation policy.
//
// Default: validator.DefaultPolicy() (HS256 only, exp enforced when present)
func WithPolicy(policy validator.Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithAlgorithms sets the acceptable signing algorithms.
//
// Default: HS256
func WithAlgorithms(algorithms ...validator.SignatureAlgorithm) Option {
	return func(o *options) {
		if len(algorithms) > 0 {
			o.policy.Algorithms = algorithms
		}
	}
}

// WithRequireExpiry rejects tokens that carry no "exp" claim.
//
// Default: false (exp is enforced only when present)
func WithRequireExpiry(value bool) Option {
	return func(o *options) {
		o.policy.RequireExpiry = value
	}
}

// WithLeeway sets the clock skew tolerated for time-based claims.
//
// Default: 0
func WithLeeway(leeway time.Duration) Option {
	return func(o *options) {
		if leeway >= 0 {
			o.policy.Leeway = leeway
		}
	}
}

// WithIssuer requires the "iss" claim to equal issuer.
func WithIssuer(issuer string) Option {
	return func(o *options) {
		o.policy.Issuer = issuer
	}
}

// WithAudience requires audience to be one of the "aud" claim values.
func WithAudience(audience string) Option {
	return func(o *options) {
		o.policy.Audience = audience
	}
}

// WithErrorHandler sets the handler called when a request is rejected.
// See the ErrorHandler type for the contract it must keep.
//
// Default: DefaultErrorHandler
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// WithTokenExtractor sets the function to extract the JWT from the request.
//
// Default: AuthHeaderTokenExtractor
func WithTokenExtractor(e TokenExtractor) Option {
	return func(o *options) {
		if e != nil {
			o.tokenExtractor = e
		}
	}
}

// WithValidateOnOptions sets whether OPTIONS requests should have their JWT
// validated. Skipped requests reach the next handler without a token in
// their context.
//
// Default: true (OPTIONS requests are validated)
func WithValidateOnOptions(value bool) Option {
	return func(o *options) {
		o.validateOnOptions = value
	}
}

// WithExclusionUrls configures URL patterns to exclude from JWT validation.
// URLs can be full URLs or just paths. Excluded requests reach the next
// handler without a token in their context.
func WithExclusionUrls(exclusions []string) Option {
	return func(o *options) {
		if len(exclusions) == 0 {
			return
		}
		excluded := append([]string(nil), exclusions...)
		o.exclusionURLHandler = func(r *http.Request) bool {
			requestFullURL := r.URL.String()
			requestPath := r.URL.Path

			for _, exclusion := range excluded {
				if requestFullURL == exclusion || requestPath == exclusion {
					return true
				}
			}
			return false
		}
	}
}

// WithLogger sets an optional logger for the gate and its core.
// The logger interface is compatible with log/slog.Logger; use
// NewLogrusLogger for logrus.
//
//	gate := jwtgate.New[Claims](secret,
//	    jwtgate.WithLogger(slog.Default()),
//	)
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTracerProvider sets the OpenTelemetry provider used for the
// per-request authentication span.
//
// Default: the global provider from otel.GetTracerProvider()
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// WithMetrics registers the jwtgate_decisions_total counter on reg.
// Building several gates against the same registerer shares one counter.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		if reg != nil {
			o.registerer = reg
		}
	}
}

// WithRequestIDHeader sets the header read to correlate log events. When the
// header is absent a random id is generated.
//
// Default: X-Request-Id
func WithRequestIDHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.requestIDHeader = http.CanonicalHeaderKey(name)
		}
	}
}
