package jwt

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered JWT claims plus application-specific fields
// embedded in access tokens.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
}

// JWT signs and verifies access tokens.
type JWT interface {
	// Generate signs the given claims and returns the compact token string.
	Generate(claims *Claims) (string, error)

	// Verify parses and validates the token, returning its claims.
	Verify(token string) (*Claims, error)
}

type contextKey struct{}

// SetAuth stores the verified claims in the context.
func SetAuth(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// GetAuth retrieves the verified claims from the context, or nil when absent.
func GetAuth(ctx context.Context) *Claims {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
