package types

import "github.com/golang-jwt/jwt/v5"

// TokenClaims represents the claims in an access token.
type TokenClaims struct {
	jwt.RegisteredClaims
	ConsumerID uint   `json:"consumer_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}
