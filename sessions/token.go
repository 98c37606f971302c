package sessions

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the session cookie. The cookie itself holds no state
// beyond the signed session ID; the session record lives server-side.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignToken wraps a session ID in a signed JWT for the cookie.
func SignToken(sessionID string, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a cookie value and returns the session ID.
func ParseToken(tokenStr string, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims.SessionID, nil
	}
	return "", jwt.ErrSignatureInvalid
}
