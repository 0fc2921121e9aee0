package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/auth"
)

func TestTokenManagerGenerateAndVerify(t *testing.T) {
	t.Parallel()

	manager := auth.NewTokenManager("super-secret", time.Minute, time.Hour)

	user := &domain.User{
		ID:    "user-123",
		Email: "user@example.com",
	}

	access, err := manager.GenerateAccess(user)
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	claims, err := manager.Verify(access, auth.KindAccess)
	if err != nil {
		t.Fatalf("expected access token to verify, got %v", err)
	}

	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("expected claims to match user, got %+v", claims)
	}

	refresh, err := manager.GenerateRefresh(user)
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	if _, err := manager.Verify(refresh, auth.KindRefresh); err != nil {
		t.Fatalf("expected refresh token to verify, got %v", err)
	}
}

func TestTokenManagerRejectsWrongKind(t *testing.T) {
	t.Parallel()

	manager := auth.NewTokenManager("secret", time.Minute, time.Hour)
	user := &domain.User{ID: "u1", Email: "u1@example.com"}

	refresh, err := manager.GenerateRefresh(user)
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	// A refresh token must never pass as an access credential.
	if _, err := manager.Verify(refresh, auth.KindAccess); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManagerVerifyErrors(t *testing.T) {
	t.Parallel()

	manager := auth.NewTokenManager("secret", time.Minute, time.Hour)

	expiredClaims := auth.Claims{
		UserID: "expired",
		Email:  "expired@example.com",
		Kind:   auth.KindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
			NotBefore: jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
		},
	}

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := manager.Verify(expiredToken, auth.KindAccess); err != domain.ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}

	otherManager := auth.NewTokenManager("other-secret", time.Minute, time.Hour)
	if _, err := otherManager.Verify(expiredToken, auth.KindAccess); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	if _, err := manager.Verify("not-a-token", auth.KindAccess); err == nil {
		t.Fatalf("expected failure for malformed token")
	}
}
