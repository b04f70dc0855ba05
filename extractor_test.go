package jwtgate

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AuthHeaderTokenExtractor(t *testing.T) {
	testCases := []struct {
		name      string
		header    []string
		wantToken string
		wantError error
	}{
		{
			name: "no header",
		},
		{
			name:   "empty header",
			header: []string{""},
		},
		{
			name:      "token in header",
			header:    []string{"Bearer i-am-token"},
			wantToken: "i-am-token",
		},
		{
			name:      "scheme is case insensitive",
			header:    []string{"BEARER i-am-token"},
			wantToken: "i-am-token",
		},
		{
			name:      "no scheme",
			header:    []string{"i-am-token"},
			wantError: ErrInvalidAuthHeader,
		},
		{
			name:      "wrong scheme",
			header:    []string{"Basic dXNlcjpwYXNz"},
			wantError: ErrInvalidAuthHeader,
		},
		{
			name:      "colon after the scheme",
			header:    []string{"Bearer: i-am-token"},
			wantError: ErrInvalidAuthHeader,
		},
		{
			name:      "double space separator",
			header:    []string{"Bearer  i-am-token"},
			wantError: ErrInvalidAuthHeader,
		},
		{
			name:      "empty token",
			header:    []string{"Bearer "},
			wantError: ErrInvalidAuthHeader,
		},
		{
			name:      "extra parts",
			header:    []string{"Bearer i-am-token extra"},
			wantError: ErrInvalidAuthHeader,
		},
		{
			name:      "multiple headers",
			header:    []string{"Bearer one", "Bearer two"},
			wantError: ErrMultipleAuthHeaders,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := &http.Request{Header: http.Header{}}
			for _, value := range testCase.header {
				request.Header.Add("Authorization", value)
			}

			gotToken, gotError := AuthHeaderTokenExtractor(request)
			assert.ErrorIs(t, gotError, testCase.wantError)
			if testCase.wantError == nil {
				assert.NoError(t, gotError)
			}
			assert.Equal(t, testCase.wantToken, gotToken)
		})
	}
}

func Test_CookieTokenExtractor(t *testing.T) {
	t.Run("token in cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.AddCookie(&http.Cookie{Name: "token", Value: "i-am-token"})

		gotToken, err := CookieTokenExtractor("token")(request)
		assert.NoError(t, err)
		assert.Equal(t, "i-am-token", gotToken)
	})

	t.Run("no cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)

		gotToken, err := CookieTokenExtractor("token")(request)
		assert.NoError(t, err)
		assert.Empty(t, gotToken)
	})
}

func Test_MultiTokenExtractor(t *testing.T) {
	noopExtractor := func(r *http.Request) (string, error) {
		return "", nil
	}
	extractor := func(r *http.Request) (string, error) {
		return "i-am-token", nil
	}
	errorExtractor := func(r *http.Request) (string, error) {
		return "", errors.New("extraction failure")
	}

	testCases := []struct {
		name       string
		extractors []TokenExtractor
		wantToken  string
		wantError  string
	}{
		{
			name: "no extractors",
		},
		{
			name:       "first token wins",
			extractors: []TokenExtractor{noopExtractor, extractor},
			wantToken:  "i-am-token",
		},
		{
			name:       "errors stop the chain",
			extractors: []TokenExtractor{errorExtractor, extractor},
			wantError:  "extraction failure",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			gotToken, err := MultiTokenExtractor(testCase.extractors...)(&http.Request{})
			if testCase.wantError != "" {
				assert.EqualError(t, err, testCase.wantError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.wantToken, gotToken)
		})
	}
}

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		value     string
		wantToken string
		wantError error
	}{
		{value: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{value: "bEaReR abc", wantToken: "abc"},
		{value: "Bearer: abc", wantError: ErrInvalidAuthHeader},
		{value: "Bearer  abc", wantError: ErrInvalidAuthHeader},
		{value: "Bearer abc def", wantError: ErrInvalidAuthHeader},
		{value: "Bearer ", wantError: ErrInvalidAuthHeader},
		{value: "Bearer", wantError: ErrInvalidAuthHeader},
		{value: "Basic dXNlcjpwYXNz", wantError: ErrInvalidAuthHeader},
	}

	for _, testCase := range testCases {
		t.Run(testCase.value, func(t *testing.T) {
			token, err := BearerToken(testCase.value)
			assert.ErrorIs(t, err, testCase.wantError)
			assert.Equal(t, testCase.wantToken, token)
		})
	}
}
