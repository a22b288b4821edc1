// Package authtest mints HS256 bearer tokens for tests. Production tokens come
// from the external auth provider.
package authtest

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token signs a token for userID that expires ttl after issuedAt.
func Token(secret, userID, email string, issuedAt time.Time, ttl time.Duration) (string, error) {
	c := jwt.MapClaims{
		"sub": userID,
		"iat": jwt.NewNumericDate(issuedAt),
		"exp": jwt.NewNumericDate(issuedAt.Add(ttl)),
	}
	if email != "" {
		c["email"] = email
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}
