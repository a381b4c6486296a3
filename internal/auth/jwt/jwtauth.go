package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// VerifyToken checks signature and expiry and returns the token subject.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	if t.Subject() == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return t.Subject(), nil
}

// NewToken issues a token for the admin username valid for ttl.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, username string) (string, error) {
	claims := map[string]interface{}{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return ts, nil
}
