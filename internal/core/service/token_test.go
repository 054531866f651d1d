package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/todolist/task-service/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Name:  "Ann",
		Email: "ann@x.com",
		Role:  domain.RoleUser,
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "ann@x.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt) {
		t.Fatalf("expiry %v not after issuance %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestTokenIssuer_DefaultTTLIsSevenDays(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt)
	if lifetime != 7*24*time.Hour {
		t.Fatalf("expected 7 day lifetime, got %v", lifetime)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// move the verifier's clock past the expiry
	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_TamperedSignature(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// flip one character in the signature segment
	i := strings.LastIndex(token, ".") + 1
	sig := []byte(token[i:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := token[:i] + string(sig)

	if _, err := issuer.Verify(tampered); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenIssuer("other", time.Hour).Verify(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenIssuer_UnknownRoleRejected(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	user := testUser()
	user.Role = domain.Role("superuser")
	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for unknown role, got %v", err)
	}
}
