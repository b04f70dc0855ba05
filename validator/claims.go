package validator

import (
	"context"
)

// TokenData is a verified token: its header metadata and the payload decoded
// into the application claims type.
type TokenData[T any] struct {
	Header Header
	Claims T
}

// Header holds the JOSE header fields of a verified token.
type Header struct {
	Algorithm   string `json:"alg"`
	KeyID       string `json:"kid,omitempty"`
	Type        string `json:"typ,omitempty"`
	ContentType string `json:"cty,omitempty"`

	// Key location hints. They are reported as sent and never used to
	// pick the verification key.
	JWKSetURL      string `json:"jku,omitempty"`
	X509URL        string `json:"x5u,omitempty"`
	X509Thumbprint string `json:"x5t,omitempty"`
}

// ClaimsValidator can be implemented by a claims type (on its pointer) to
// run application checks after the standard ones pass.
type ClaimsValidator interface {
	Validate(context.Context) error
}
