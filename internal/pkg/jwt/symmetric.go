package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates a token that failed signature or claims validation.
var ErrInvalidToken = errors.New("invalid token")

// Symmetric is a JWT implementation using HMAC-SHA512 with a shared secret.
type Symmetric struct {
	secret []byte
}

// NewSymmetric creates a Symmetric signer/verifier from the given secret.
func NewSymmetric(secret []byte) *Symmetric {
	return &Symmetric{secret: secret}
}

// Generate signs claims with HS512 and returns the compact token.
func (s *Symmetric) Generate(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
}

// Verify parses the compact token, checks the HS512 signature and registered
// claims, and returns the embedded Claims.
func (s *Symmetric) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
