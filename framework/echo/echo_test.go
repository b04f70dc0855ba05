package jwtecho

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uptimeventures/jwtgate"
)

const testSecret = "some-secret"

type testClaims struct {
	Subject string `json:"sub"`
}

func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newServer(opts ...Option) *echo.Echo {
	e := echo.New()
	e.Use(New(jwtgate.New[testClaims]([]byte(testSecret)), opts...))
	handler := func(c echo.Context) error {
		claims, err := GetClaims[testClaims](c)
		if err != nil {
			return c.NoContent(http.StatusOK)
		}
		return c.String(http.StatusOK, claims.Subject)
	}
	e.GET("/", handler)
	e.GET("/healthz", handler)
	return e
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "it admits a valid token",
			authHeader:     "Bearer " + signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "test@example.net"}),
			wantStatusCode: http.StatusOK,
			wantBody:       "test@example.net",
		},
		{
			name:           "it rejects a missing token",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "it rejects an algorithm outside the policy",
			authHeader:     "Bearer " + signToken(t, jwt.SigningMethodHS512, jwt.MapClaims{"sub": "test@example.net"}),
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	e := newServer()
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if testCase.authHeader != "" {
				request.Header.Set(echo.HeaderAuthorization, testCase.authHeader)
			}
			recorder := httptest.NewRecorder()

			e.ServeHTTP(recorder, request)

			assert.Equal(t, testCase.wantStatusCode, recorder.Code)
			assert.Equal(t, testCase.wantBody, recorder.Body.String())
		})
	}
}

func TestWithSkipper(t *testing.T) {
	e := newServer(WithSkipper(func(c echo.Context) bool {
		return c.Path() == "/healthz"
	}))

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestWithErrorHandler(t *testing.T) {
	e := newServer(WithErrorHandler(func(c echo.Context, err error) error {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}))

	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"message":"unauthorized"}`, recorder.Body.String())
}
