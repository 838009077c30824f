package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/foundergrid/perkmarket/internal/common"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := IssueAccessToken(userID, "founder", secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	claims, err := ParseAccessToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
	if claims.Role != "founder" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "founder")
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := IssueAccessToken("u1", "founder", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	_, err = ParseAccessToken(tok, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueAccessToken("u2", "admin", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	_, err = ParseAccessToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for invalid signature, got %v", err)
	}
}

func TestParseAccessToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseAccessToken("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}
