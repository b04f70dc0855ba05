/*
Package core provides the framework-agnostic admit/reject decision behind
jwtgate. Transport adapters (net/http, gin, echo, gRPC) extract a token
string, hand it to Core.CheckToken and act on the result.

# Architecture

	┌─────────────────────────────────────────────┐
	│         Transport Adapters                  │
	│  (net/http, gin, echo, gRPC)                │
	└────────────────┬────────────────────────────┘
	                 │ token string
	                 ▼
	┌─────────────────────────────────────────────┐
	│          Core[T] (THIS PACKAGE)             │
	│  • Missing token check                      │
	│  • Failure classification (error codes)     │
	│  • Request-scoped AuthorizationToken[T]     │
	└────────────────┬────────────────────────────┘
	                 │
	                 ▼
	┌─────────────────────────────────────────────┐
	│          validator.Validator[T]             │
	│  (signature, algorithm, claims)             │
	└─────────────────────────────────────────────┘

# Basic Usage

	v := validator.New[Claims]([]byte("some-secret"), validator.DefaultPolicy())
	c := core.New[Claims](v)

	token, err := c.CheckToken(ctx, tokenString)
	if err != nil {
	    // core.ErrorCode(err) names the case; the client only sees "unauthorized"
	}
	ctx = core.SetToken(ctx, token)

# Error Handling

Every rejection is a *ValidationError and matches ErrJWTInvalid:

	var validationErr *core.ValidationError
	if errors.As(err, &validationErr) {
	    switch validationErr.Code {
	    case core.ErrorCodeTokenExpired:
	    case core.ErrorCodeInvalidAlgorithm:
	    }
	}

The codes exist for logs, traces and metrics. Adapters must not put them in
responses.

# Context

AuthorizationToken[T] is stored under an unexported key, so only this
package can write it. Adapters write it at most once per request, on
admission; handlers behind an adapter may rely on it being present.
*/
package core
