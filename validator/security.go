package validator

import (
	"fmt"
	"strings"
)

// maxTokenSize bounds the work done on attacker-supplied input before any
// base64 or JSON decoding happens.
const maxTokenSize = 8 * 1024

// checkTokenFormat rejects input that cannot be a compact JWS
// (header.payload.signature) without allocating per segment.
func checkTokenFormat(tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("%w: token is empty", ErrTokenMalformed)
	}
	if len(tokenString) > maxTokenSize {
		return fmt.Errorf("%w: token exceeds %d bytes", ErrTokenMalformed, maxTokenSize)
	}
	if dots := strings.Count(tokenString, "."); dots != 2 {
		return fmt.Errorf("%w: expected 3 segments, found %d", ErrTokenMalformed, dots+1)
	}
	return nil
}
