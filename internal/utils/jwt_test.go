package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateToken(secret, userID, "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	gotID, gotRole, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if gotID != userID {
		t.Errorf("user ID = %s, want %s", gotID, userID)
	}
	if gotRole != "ADMIN" {
		t.Errorf("role = %q, want ADMIN", gotRole)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", uuid.New(), "EDITOR", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, _, err := ParseToken("secret-b", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), "EDITOR", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, _, err := ParseToken("secret", token); err == nil {
		t.Error("expected error for expired token")
	}
}
