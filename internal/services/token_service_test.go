package services

import (
	"testing"
	"time"

	"github.com/drilledtools/backend/internal/config"
)

func testTokenConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: expiry,
	}
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService(testTokenConfig(time.Hour))

	tok, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	email, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "alice@example.com" {
		t.Fatalf("bound email mismatch: %q", email)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	tok, err := NewTokenService(testTokenConfig(time.Hour)).Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewTokenService(&config.Config{JWTSecret: "different", JWTExpiry: time.Hour})
	if _, err := other.Verify(tok); err == nil {
		t.Fatalf("expected verification failure for foreign signature")
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService(testTokenConfig(-time.Minute))

	tok, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(tok); err == nil {
		t.Fatalf("expected verification failure for expired token")
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService(testTokenConfig(time.Hour))
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tok); err == nil {
			t.Fatalf("expected failure for %q", tok)
		}
	}
}
