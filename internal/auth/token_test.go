package auth_test

import (
	"errors"
	"testing"
	"time"

	"todo-server/internal/auth"
)

const testSecret = "test-secret-for-token-tests"

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)

	token, err := tm.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	// a negative TTL issues a token that is already past its expiry
	tm := auth.NewTokenManager(testSecret, -time.Minute)

	token, err := tm.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = tm.Verify(token)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager(testSecret, time.Hour)
	verifier := auth.NewTokenManager("a-different-secret", time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := tm.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
