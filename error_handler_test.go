package jwtgate

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uptimeventures/jwtgate/core"
)

func TestDefaultErrorHandler(t *testing.T) {
	errs := []error{
		ErrJWTMissing,
		ErrJWTInvalid,
		core.NewValidationError(core.ErrorCodeTokenExpired, "token is expired", nil),
		core.NewValidationError(core.ErrorCodeInvalidAlgorithm, "signing algorithm not allowed", nil),
		errors.New("anything else"),
	}

	for _, err := range errs {
		t.Run(err.Error(), func(t *testing.T) {
			recorder := httptest.NewRecorder()

			DefaultErrorHandler(recorder, httptest.NewRequest(http.MethodGet, "/", nil), err)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Empty(t, recorder.Body.String())
			assert.Empty(t, recorder.Header())
		})
	}
}
