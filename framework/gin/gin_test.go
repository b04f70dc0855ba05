package jwtgin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uptimeventures/jwtgate"
	"github.com/uptimeventures/jwtgate/core"
)

const testSecret = "some-secret"

type testClaims struct {
	Subject string `json:"sub"`
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newRouter(opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(New(jwtgate.New[testClaims]([]byte(testSecret)), opts...))
	router.GET("/", func(c *gin.Context) {
		claims, err := GetClaims[testClaims](c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		token, _ := GetToken[testClaims](c)
		c.JSON(http.StatusOK, gin.H{"sub": claims.Subject, "alg": token.Header.Algorithm})
	})
	return router
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "it admits a valid token and exposes its claims",
			authHeader:     "Bearer " + signToken(t, jwt.MapClaims{"sub": "test@example.net"}),
			wantStatusCode: http.StatusOK,
			wantBody:       `{"alg":"HS256","sub":"test@example.net"}`,
		},
		{
			name:           "it rejects a request without a token",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "it rejects a malformed token",
			authHeader:     "Bearer xxxx",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "it rejects the colon separator",
			authHeader:     "Bearer: " + signToken(t, jwt.MapClaims{"sub": "a"}),
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	router := newRouter()
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if testCase.authHeader != "" {
				request.Header.Set("Authorization", testCase.authHeader)
			}
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, testCase.wantStatusCode, recorder.Code)
			if testCase.wantBody != "" {
				assert.JSONEq(t, testCase.wantBody, recorder.Body.String())
			} else {
				assert.Empty(t, recorder.Body.String())
			}
		})
	}
}

func TestWithErrorHandler(t *testing.T) {
	var got error
	router := newRouter(WithErrorHandler(func(c *gin.Context, err error) {
		got = err
		c.String(http.StatusTeapot, "nope")
	}))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "nope", recorder.Body.String())
	assert.ErrorIs(t, got, jwtgate.ErrJWTMissing)
	assert.Equal(t, core.ErrorCodeTokenMissing, core.ErrorCode(got))
}
