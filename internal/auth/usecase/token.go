package usecase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DecodeClaims decodes a bearer token's payload without verifying the
// signature. The client is a UX gate, not a trust boundary; real
// authorization happens server-side. Malformed tokens (wrong segment
// count, bad encoding, non-JSON payload) return nil instead of an error.
func DecodeClaims(token string) jwt.MapClaims {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// IsTokenValid reports whether the token is present, decodable, carries an
// exp claim and has not expired. The exp claim is epoch seconds; a token
// expiring exactly now counts as expired.
func IsTokenValid(token string) bool {
	if token == "" {
		return false
	}
	claims := DecodeClaims(token)
	if claims == nil {
		return false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}
	return time.Now().Before(expiry.Time)
}
