package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims are the claims embedded in a session token.
// Validity is fully determined by signature and expiry; there is no
// server-side session store.
type TokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
