/*
Package jwtgate provides an HTTP authentication gate for bearer JSON Web
Tokens signed with a shared secret.

The gate inspects the Authorization header of each request, verifies the
token, and either admits the request with the decoded token attached to its
context or rejects it with 401 Unauthorized and an empty body. It follows the
Core-Adapter pattern: this package is the net/http adapter, package core makes
the decision and package validator decodes the token.

# Quick Start

	type Claims struct {
	    Subject string `json:"sub"`
	}

	func main() {
	    gate := jwtgate.New[Claims]([]byte("some-secret"))

	    http.Handle("/api/", gate.CheckJWT(apiHandler))
	    log.Fatal(http.ListenAndServe(":8080", nil))
	}

# Accessing Claims

Handlers behind CheckJWT can rely on the token being present:

	func apiHandler(w http.ResponseWriter, r *http.Request) {
	    claims := jwtgate.MustGetClaims[Claims](r.Context())
	    fmt.Fprintf(w, "hello %s", claims.Subject)
	}

GetToken also returns the header metadata (alg, kid) of the token.

# Header Format

Only "Bearer <token>" with a single space is accepted. The scheme is matched
case-insensitively. See AuthHeaderTokenExtractor.

# Validation Policy

	gate := jwtgate.New[Claims](secret,
	    jwtgate.WithAlgorithms(validator.HS256, validator.HS512),
	    jwtgate.WithRequireExpiry(true),
	    jwtgate.WithLeeway(30*time.Second),
	)

Without options only HS256 is accepted. Tokens declaring any other algorithm
are rejected before their signature is checked.

# Rejections

Missing headers, malformed headers, undecodable tokens, bad signatures,
disallowed algorithms and violated claims all produce the same response.
The reason is available to logs, traces and metrics only:

	gate := jwtgate.New[Claims](secret,
	    jwtgate.WithLogger(slog.Default()),
	    jwtgate.WithTracerProvider(tp),
	    jwtgate.WithMetrics(prometheus.DefaultRegisterer),
	)

# Other Transports

See framework/gin, framework/echo and integrations/grpc.
*/
package jwtgate
