package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether a persisted access token carries an exp
// claim in the past. The signature is not checked: the storefront holds no
// signing secret, it only needs to know whether a stored session is worth
// restoring. Tokens that are not JWTs, or carry no expiry, pass through.
func TokenExpired(tokenString string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
