package validator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Validator decodes and verifies tokens signed with a shared secret, binding
// the payload to the application claims type T.
//
// A Validator holds only immutable configuration and is safe for concurrent use.
type Validator[T any] struct {
	secret []byte
	policy Policy
	parser *jwt.Parser
}

// New sets up a new Validator for the given secret and policy. A policy
// without algorithms falls back to DefaultPolicy's algorithm set.
// Construction never fails.
func New[T any](secret []byte, policy Policy) *Validator[T] {
	if len(policy.Algorithms) == 0 {
		policy.Algorithms = DefaultPolicy().Algorithms
	}
	// Copy so later changes to the caller's slices are not observed.
	policy.Algorithms = append([]SignatureAlgorithm(nil), policy.Algorithms...)

	return &Validator[T]{
		secret: append([]byte(nil), secret...),
		policy: policy,
		parser: jwt.NewParser(policy.parserOptions()...),
	}
}

// Policy returns a copy of the policy the Validator enforces.
func (v *Validator[T]) Policy() Policy {
	p := v.policy
	p.Algorithms = append([]SignatureAlgorithm(nil), v.policy.Algorithms...)
	return p
}

// Decode verifies the token signature, the algorithm against the policy and
// the time-based and registered claims, then returns the token header with
// the payload decoded into T. Partial results are never returned.
//
// When *T implements ClaimsValidator its Validate method runs last.
func (v *Validator[T]) Decode(ctx context.Context, tokenString string) (*TokenData[T], error) {
	if err := checkTokenFormat(tokenString); err != nil {
		return nil, err
	}

	env := &envelope[T]{}

	token, err := v.parser.ParseWithClaims(tokenString, env, v.keyFunc)
	if err != nil {
		return nil, classify(err)
	}
	// encoding/json turns a "null" payload into a no-op without calling
	// UnmarshalJSON, so an untouched envelope means there was no claims object.
	if !env.decoded {
		return nil, fmt.Errorf("%w: %w", ErrTokenMalformed, errClaimsNotObject)
	}

	if cv, ok := any(&env.claims).(ClaimsValidator); ok {
		if err := cv.Validate(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidClaims, err)
		}
	}

	return &TokenData[T]{
		Header: headerFromToken(token),
		Claims: env.claims,
	}, nil
}

// keyFunc pins the algorithm before any signature check happens. Only HMAC
// methods can be verified with a shared secret, so asymmetric and "none"
// algorithms are refused even if a policy lists them.
func (v *Validator[T]) keyFunc(token *jwt.Token) (any, error) {
	alg := token.Method.Alg()
	if !v.policy.allows(alg) {
		return nil, fmt.Errorf("%w: token specified %q", ErrAlgorithmNotAllowed, alg)
	}
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: %q cannot be verified with a shared secret", ErrAlgorithmNotAllowed, alg)
	}
	return v.secret, nil
}

// classify maps codec errors onto the package sentinels. Order matters: a
// claims failure from jwt/v5 carries both ErrTokenInvalidClaims and the
// specific cause.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrAlgorithmNotAllowed):
		return err
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		// Unknown or unspecified alg header.
		return fmt.Errorf("%w: %w", ErrAlgorithmNotAllowed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return fmt.Errorf("%w: %w", ErrTokenNotValidYet, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: %w", ErrInvalidIssuer, err)
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return fmt.Errorf("%w: %w", ErrInvalidAudience, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}
}

func headerFromToken(token *jwt.Token) Header {
	h := Header{Algorithm: token.Method.Alg()}
	h.KeyID, _ = token.Header["kid"].(string)
	h.Type, _ = token.Header["typ"].(string)
	h.ContentType, _ = token.Header["cty"].(string)
	h.JWKSetURL, _ = token.Header["jku"].(string)
	h.X509URL, _ = token.Header["x5u"].(string)
	h.X509Thumbprint, _ = token.Header["x5t"].(string)
	return h
}

// envelope decodes the payload twice: once into the registered claims that
// jwt/v5 validates, once into the application's T.
type envelope[T any] struct {
	registered jwt.RegisteredClaims
	claims     T
	decoded    bool
}

var errClaimsNotObject = errors.New("claims set must be a JSON object")

func (e *envelope[T]) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '{' {
		return errClaimsNotObject
	}
	if err := json.Unmarshal(data, &e.registered); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &e.claims); err != nil {
		return err
	}
	e.decoded = true
	return nil
}

func (e *envelope[T]) GetExpirationTime() (*jwt.NumericDate, error) {
	return e.registered.GetExpirationTime()
}

func (e *envelope[T]) GetIssuedAt() (*jwt.NumericDate, error) {
	return e.registered.GetIssuedAt()
}

func (e *envelope[T]) GetNotBefore() (*jwt.NumericDate, error) {
	return e.registered.GetNotBefore()
}

func (e *envelope[T]) GetIssuer() (string, error) {
	return e.registered.GetIssuer()
}

func (e *envelope[T]) GetSubject() (string, error) {
	return e.registered.GetSubject()
}

func (e *envelope[T]) GetAudience() (jwt.ClaimStrings, error) {
	return e.registered.GetAudience()
}
