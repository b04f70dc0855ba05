/*
Package jwtgrpc authenticates gRPC calls with the same bearer-token rules as
the HTTP gate.

The interceptors read the "authorization" metadata entry, which must hold
exactly "Bearer <token>", verify the token with a shared secret, and store
the decoded claims in the handler's context. Every rejection is reported as
codes.Unauthenticated with the same message, so callers cannot tell why a
token was refused.

	type Claims struct {
	    Subject string `json:"sub"`
	}

	interceptor := jwtgrpc.New[Claims](secret, validator.DefaultPolicy(),
	    jwtgrpc.WithExcludedMethods("/grpc.health.v1.Health/Check"),
	)

	server := grpc.NewServer(
	    grpc.UnaryInterceptor(interceptor.UnaryServerInterceptor()),
	    grpc.StreamInterceptor(interceptor.StreamServerInterceptor()),
	)

Inside a handler:

	claims, err := jwtgrpc.GetClaims[Claims](ctx)
*/
package jwtgrpc
