package validator

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signature algorithms usable with a shared secret.
const (
	HS256 = SignatureAlgorithm("HS256") // HMAC using SHA-256
	HS384 = SignatureAlgorithm("HS384") // HMAC using SHA-384
	HS512 = SignatureAlgorithm("HS512") // HMAC using SHA-512
)

// SignatureAlgorithm is a signature algorithm identifier as it appears in
// the "alg" header of a token.
type SignatureAlgorithm string

// Policy is the set of rules applied while decoding a token. It is fixed
// when a Validator is built.
type Policy struct {
	// Algorithms lists the acceptable "alg" header values. A token signed
	// with anything else is rejected before its signature is checked.
	Algorithms []SignatureAlgorithm

	// RequireExpiry rejects tokens without an "exp" claim. When false, "exp"
	// is still enforced if present.
	RequireExpiry bool

	// Leeway is the clock skew tolerated for "exp", "nbf" and "iat".
	Leeway time.Duration

	// Issuer, when set, must match the "iss" claim.
	Issuer string

	// Audience, when set, must be one of the "aud" claim values.
	Audience string
}

// DefaultPolicy accepts HS256 only and adds no claim constraints beyond the
// ones the codec always enforces.
func DefaultPolicy() Policy {
	return Policy{Algorithms: []SignatureAlgorithm{HS256}}
}

func (p Policy) allows(alg string) bool {
	return slices.Contains(p.Algorithms, SignatureAlgorithm(alg))
}

func (p Policy) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{jwt.WithIssuedAt()}
	if p.RequireExpiry {
		opts = append(opts, jwt.WithExpirationRequired())
	}
	if p.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(p.Leeway))
	}
	if p.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.Issuer))
	}
	if p.Audience != "" {
		opts = append(opts, jwt.WithAudience(p.Audience))
	}
	return opts
}
