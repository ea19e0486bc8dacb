package token

import (
	"context"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	src := New("test-secret")
	ctx := context.Background()

	tok, err := src.Issue(ctx, "mina")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := src.Verify(ctx, tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "mina" {
		t.Fatalf("expected username mina, got %q", claims.Username)
	}
	if claims.IsAdmin() {
		t.Fatal("mina should not be admin")
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	ctx := context.Background()

	tok, err := New("secret-a").Issue(ctx, "mina")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := New("secret-b").Verify(ctx, tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	src := New("test-secret")
	src.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	ctx := context.Background()

	tok, err := src.Issue(ctx, "mina")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	verifier := New("test-secret")
	if _, err := verifier.Verify(ctx, tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestIssue_RequiresSecretAndUsername(t *testing.T) {
	ctx := context.Background()

	if _, err := New("   ").Issue(ctx, "mina"); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := New("secret").Issue(ctx, "  "); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for blank username, got %v", err)
	}
}

func TestVerify_RejectsGarbage(t *testing.T) {
	if _, err := New("secret").Verify(context.Background(), "not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
