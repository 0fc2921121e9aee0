package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iho/fintrack/internal/domain"
)

// TokenKind distinguishes short-lived access tokens from the refresh
// credential used to renew them.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Claims represents the JWT claims
type Claims struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Kind   TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the dev server's JWT tokens.
type TokenManager struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a new token manager.
func NewTokenManager(secretKey string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccess generates a short-lived access token for a user.
func (m *TokenManager) GenerateAccess(user *domain.User) (string, error) {
	return m.generate(user, KindAccess, m.accessTTL)
}

// GenerateRefresh generates the long-lived refresh credential.
func (m *TokenManager) GenerateRefresh(user *domain.User) (string, error) {
	return m.generate(user, KindRefresh, m.refreshTTL)
}

func (m *TokenManager) generate(user *domain.User, kind TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify verifies a token of the expected kind and returns its claims.
func (m *TokenManager) Verify(tokenString string, kind TokenKind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.Kind != kind {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
