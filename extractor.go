package jwtgate

import (
	"errors"
	"net/http"
	"strings"
)

// Extractor errors.
var (
	// ErrInvalidAuthHeader is returned when the Authorization header is not "Bearer <token>".
	ErrInvalidAuthHeader = errors.New("authorization header format must be Bearer {token}")

	// ErrMultipleAuthHeaders is returned when more than one Authorization header is sent.
	ErrMultipleAuthHeaders = errors.New("multiple authorization headers are not allowed")
)

// TokenExtractor is a function that takes a request as input and returns
// either a token or an error. An error should only be returned if an attempt
// to specify a token was found, but the information was somehow incorrectly
// formed. In the case where a token is simply not present, this should not
// be treated as an error. An empty string should be returned in that case.
type TokenExtractor func(r *http.Request) (string, error)

// AuthHeaderTokenExtractor is a TokenExtractor that takes a request
// and extracts the token from the Authorization header using BearerToken.
// More than one Authorization header is an error.
func AuthHeaderTokenExtractor(r *http.Request) (string, error) {
	values := r.Header.Values("Authorization")
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		return "", nil // No error, just no JWT.
	}
	if len(values) > 1 {
		return "", ErrMultipleAuthHeaders
	}

	return BearerToken(values[0])
}

// BearerToken parses an Authorization value of the exact shape
// "<scheme> <token>": the scheme is "Bearer" compared case-insensitively,
// the separator is a single space, and the token is non-empty with no
// further whitespace. "Bearer: <token>" and "Bearer  <token>" are rejected
// with ErrInvalidAuthHeader.
func BearerToken(value string) (string, error) {
	scheme, token, found := strings.Cut(value, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}
	if token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// CookieTokenExtractor builds a TokenExtractor that takes a request and
// extracts the token from the cookie using the passed in cookieName.
func CookieTokenExtractor(cookieName string) TokenExtractor {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if errors.Is(err, http.ErrNoCookie) {
			return "", nil // No cookie, then no JWT, so no error.
		}
		if err != nil {
			return "", err
		}

		return cookie.Value, nil
	}
}

// MultiTokenExtractor returns a TokenExtractor that runs multiple TokenExtractors
// and takes the one that does not return an empty token. If a TokenExtractor
// returns an error that error is immediately returned.
func MultiTokenExtractor(extractors ...TokenExtractor) TokenExtractor {
	return func(r *http.Request) (string, error) {
		for _, ex := range extractors {
			token, err := ex(r)
			if err != nil {
				return "", err
			}

			if token != "" {
				return token, nil
			}
		}
		return "", nil
	}
}
