package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/BradenHooton/planwell/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired distinguishes an expired session token from any other
// validation failure so the middleware can report it separately.
var ErrTokenExpired = errors.New("token expired")

// TokenManager issues and validates signed session tokens. Tokens are
// stateless: there is no revocation store, a token is valid until its
// expiry as long as the signature checks out.
type TokenManager struct {
	secret      string
	tokenExpiry time.Duration
}

// NewTokenManager creates a new TokenManager
func NewTokenManager(secret string, tokenExpiry time.Duration) *TokenManager {
	return &TokenManager{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Issue creates a session token embedding the user id and email,
// expiring tokenExpiry (24h by default) after issuance.
func (tm *TokenManager) Issue(userID, email string) (string, error) {
	now := time.Now()

	claims := &models.TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(tm.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies a token and returns its claims. Returns
// ErrTokenExpired for a token past its expiry and models.ErrUnauthorized
// for any other failure (bad signature, malformed, wrong algorithm).
func (tm *TokenManager) Validate(tokenString string) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tm.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, models.ErrUnauthorized
	}

	if !token.Valid {
		return nil, models.ErrUnauthorized
	}

	if claims.UserID == "" {
		return nil, models.ErrUnauthorized
	}

	return claims, nil
}
