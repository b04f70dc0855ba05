package jwtgate

import (
	"net/http"

	"github.com/uptimeventures/jwtgate/core"
)

var (
	// ErrJWTMissing is returned when the JWT is missing.
	ErrJWTMissing = core.ErrJWTMissing

	// ErrJWTInvalid is returned when the JWT is invalid. Every rejection matches it.
	ErrJWTInvalid = core.ErrJWTInvalid
)

// ErrorHandler is called when the Gate rejects a request. err is always a
// *core.ValidationError; core.ErrorCode(err) names the rejection case.
//
// A custom ErrorHandler MUST NOT call the next handler, and should not echo
// err to the client: telling the cases apart gives an attacker an oracle.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler answers every rejection identically: 401 Unauthorized,
// no body and no extra headers.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	w.WriteHeader(http.StatusUnauthorized)
}
