package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	raw, err := svc.GenerateAccessToken(userID, "jane@example.com")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	claims, err := svc.ValidateAccessToken(raw)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("expected email, got %q", claims.Email)
	}
	if claims.TokenType != TypeAccess {
		t.Fatalf("expected access token type, got %q", claims.TokenType)
	}
}

func TestRefreshToken_NotValidAsAccess(t *testing.T) {
	svc := newTestService()

	raw, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if _, err := svc.ValidateAccessToken(raw); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if _, err := svc.ValidateRefreshToken(raw); err != nil {
		t.Fatalf("expected refresh token to validate, got %v", err)
	}
}

func TestValidate_Expired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	raw, err := svc.GenerateAccessToken(uuid.New(), "jane@example.com")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if _, err := svc.ValidateAccessToken(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestValidate_TamperedToken(t *testing.T) {
	svc := newTestService()

	raw, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if _, err := svc.ValidateAccessToken(raw + "x"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestGenerate_MissingSecret(t *testing.T) {
	svc := NewHMACService("", "", time.Minute, time.Minute)

	if _, err := svc.GenerateAccessToken(uuid.New(), ""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
