package validator

import "errors"

// Decode failures. Every error returned by Validator.Decode wraps exactly one
// of these.
var (
	ErrTokenMalformed      = errors.New("token is malformed")
	ErrSignatureInvalid    = errors.New("token signature is invalid")
	ErrAlgorithmNotAllowed = errors.New("signing algorithm is not allowed")
	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenNotValidYet    = errors.New("token is not valid yet")
	ErrInvalidIssuer       = errors.New("token has an invalid issuer")
	ErrInvalidAudience     = errors.New("token has an invalid audience")
	ErrInvalidClaims       = errors.New("token claims are invalid")
)
