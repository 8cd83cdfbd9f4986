package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates the access tokens minted by the identity provider.
// The engine trusts the token's subject and role claims for authorization and
// audit attribution; it never issues tokens itself.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
