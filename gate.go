package jwtgate

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/uptimeventures/jwtgate/core"
	"github.com/uptimeventures/jwtgate/validator"
)

// Gate admits requests carrying a valid bearer token and rejects all others
// with 401 Unauthorized. T is the application claims type the token payload
// is decoded into.
//
// A Gate holds only immutable configuration. One instance serves any number
// of concurrent requests.
type Gate[T any] struct {
	core                *core.Core[T]
	errorHandler        ErrorHandler
	tokenExtractor      TokenExtractor
	validateOnOptions   bool
	exclusionURLHandler ExclusionURLHandler
	logger              Logger
	tracer              trace.Tracer
	metrics             *decisionMetrics
	requestIDHeader     string
}

// New builds a Gate verifying tokens with secret. Without options the gate
// accepts HS256 tokens only, enforces "exp" when present, and answers every
// rejection with an empty 401.
//
// Construction never fails.
//
//	type Claims struct {
//	    Subject string `json:"sub"`
//	}
//
//	gate := jwtgate.New[Claims]([]byte("some-secret"))
//	http.Handle("/api/", gate.CheckJWT(apiHandler))
func New[T any](secret []byte, opts ...Option) *Gate[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var coreOpts []core.Option
	if o.logger != nil {
		coreOpts = append(coreOpts, core.WithLogger(o.logger))
	}

	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	g := &Gate[T]{
		core:                core.New[T](validator.New[T](secret, o.policy), coreOpts...),
		errorHandler:        o.errorHandler,
		tokenExtractor:      o.tokenExtractor,
		validateOnOptions:   o.validateOnOptions,
		exclusionURLHandler: o.exclusionURLHandler,
		logger:              o.logger,
		tracer:              tp.Tracer(tracerName),
		requestIDHeader:     o.requestIDHeader,
	}

	if o.registerer != nil {
		m, err := newDecisionMetrics(o.registerer)
		if err != nil {
			g.warn("decision metrics disabled", "error", err)
		}
		g.metrics = m
	}

	return g
}

// Authenticate makes the admit/reject decision for r.
//
// On admission it returns a shallow copy of r whose context carries the
// *core.AuthorizationToken[T] and the authentication span, so downstream
// spans become its children. On rejection it returns a nil request and a
// *core.ValidationError; the caller must not run the downstream chain.
func (g *Gate[T]) Authenticate(r *http.Request) (*http.Request, error) {
	return g.authenticate(r, g.requestID(r))
}

func (g *Gate[T]) authenticate(r *http.Request, requestID string) (*http.Request, error) {
	ctx, span := g.tracer.Start(r.Context(), "jwtgate.Authenticate")
	defer span.End()

	token, err := g.extractAndCheck(ctx, r)
	if err != nil {
		reason := core.ErrorCode(err)
		recordRejected(span, reason)
		g.metrics.observe(outcomeRejected, reason)
		g.warn("request rejected",
			"request_id", requestID,
			"reason", reason,
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)
		return nil, err
	}

	recordAdmitted(span, token.Header.KeyID)
	g.metrics.observe(outcomeAdmitted, reasonNone)

	return r.WithContext(core.SetToken(ctx, token)), nil
}

func (g *Gate[T]) extractAndCheck(ctx context.Context, r *http.Request) (*core.AuthorizationToken[T], error) {
	raw, err := g.tokenExtractor(r)
	if err != nil {
		return nil, core.NewValidationError(core.ErrorCodeHeaderMalformed, "error extracting token", err)
	}
	return g.core.CheckToken(ctx, raw)
}

// CheckJWT wraps next so that it only runs for admitted requests. next is
// invoked at most once per request and the gate does not touch the response
// on the admitted path.
func (g *Gate[T]) CheckJWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// If there's an exclusion handler and the URL matches, skip JWT validation
		if g.exclusionURLHandler != nil && g.exclusionURLHandler(r) {
			g.debug("skipping JWT validation for excluded URL",
				"method", r.Method,
				"path", r.URL.Path)
			next.ServeHTTP(w, r)
			return
		}
		if !g.validateOnOptions && r.Method == http.MethodOptions {
			g.debug("skipping JWT validation for OPTIONS request")
			next.ServeHTTP(w, r)
			return
		}

		requestID := g.requestID(r)
		g.debug("pre-chain authentication", "request_id", requestID)

		admitted, err := g.authenticate(r, requestID)
		if err != nil {
			g.errorHandler(w, r, err)
			return
		}

		next.ServeHTTP(w, admitted)
		g.debug("post-chain authentication", "request_id", requestID)
	})
}

// requestID only tags log events, so without a logger there is nothing to tag.
func (g *Gate[T]) requestID(r *http.Request) string {
	if g.logger == nil {
		return ""
	}
	if id := r.Header.Get(g.requestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

func (g *Gate[T]) debug(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, args...)
	}
}

func (g *Gate[T]) warn(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Warn(msg, args...)
	}
}

// GetToken retrieves the authorization token the gate attached to ctx.
//
//	token, err := jwtgate.GetToken[Claims](r.Context())
//	if err != nil {
//	    http.Error(w, "failed to get token", http.StatusInternalServerError)
//	    return
//	}
//	fmt.Println(token.Header.KeyID, token.Claims.Subject)
func GetToken[T any](ctx context.Context) (*core.AuthorizationToken[T], error) {
	return core.GetToken[T](ctx)
}

// GetClaims retrieves the decoded claims the gate attached to ctx.
func GetClaims[T any](ctx context.Context) (T, error) {
	return core.GetClaims[T](ctx)
}

// MustGetClaims retrieves claims from the context or panics.
// Use only behind CheckJWT, where the gate guarantees their presence.
//
//	claims := jwtgate.MustGetClaims[Claims](r.Context())
func MustGetClaims[T any](ctx context.Context) T {
	claims, err := core.GetClaims[T](ctx)
	if err != nil {
		panic(err)
	}
	return claims
}

// HasToken checks if an authorization token exists in the context.
func HasToken(ctx context.Context) bool {
	return core.HasToken(ctx)
}
