/*
Package validator decodes and verifies shared-secret JSON Web Tokens using
github.com/golang-jwt/jwt/v5.

It is the decode operation behind the gate: one call checks the signature,
pins the algorithm against the Policy, enforces "exp", "nbf" and "iat" (plus
optional "iss" and "aud"), and binds the payload to an application claims type.

# Claims

The Validator is generic over the claims type. Any type that encoding/json
can decode into works; the validator never looks at its fields:

	type Claims struct {
	    Subject string `json:"sub"`
	    Scope   string `json:"scope"`
	}

	v := validator.New[Claims]([]byte("some-secret"), validator.DefaultPolicy())

	data, err := v.Decode(ctx, tokenString)
	if err != nil {
	    // errors.Is(err, validator.ErrTokenExpired), ...
	}
	fmt.Println(data.Claims.Subject, data.Header.KeyID)

Use a value type for T. If *T implements ClaimsValidator, Validate is called
after the standard checks pass.

# Algorithms

DefaultPolicy accepts HS256 only. The algorithm is checked before the key is
handed to the codec, so a token declaring HS512, RS256 or "none" is rejected
under the default policy even when the secret matches.
*/
package validator
