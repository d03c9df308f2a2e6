package service

import (
	"testing"
	"time"

	"github.com/uybor/uybor-api/internal/core/domain"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager("secret", 24*time.Hour)

	token, err := m.Issue("user_42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "user_42" {
		t.Fatalf("expected subject user_42, got %s", subject)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret", time.Hour)
	verifier := NewJWTManager("other", time.Hour)

	token, err := issuer.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", 24*time.Hour)
	m.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := m.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	m.now = time.Now
	if _, err := m.Verify(token); err != domain.ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTManager_Garbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	if _, err := m.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := m.Verify(""); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
