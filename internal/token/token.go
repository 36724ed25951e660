// Package token issues and verifies the bearer tokens that carry a user's
// email identity between requests.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the fixed issuer claim stamped on every token.
const Issuer = "bookclub"

// Service signs and verifies tokens with a shared symmetric secret.
type Service struct {
	secret []byte
}

// NewService creates a token service for the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue produces a signed token asserting the given email identity.
// No expiry claim is set; tokens remain valid until the secret rotates.
func (s *Service) Issue(email string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}

	claims := jwt.MapClaims{
		"iss":   Issuer,
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses a token and returns the email claim it carries.
// It fails closed: any signature, issuer, or claim problem yields ok=false
// and the caller must treat the request as unauthenticated.
func (s *Service) Verify(tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	if iss, _ := claims["iss"].(string); iss != Issuer {
		return "", false
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", false
	}

	return email, true
}
