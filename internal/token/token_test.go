package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	svc := New("super-secret", time.Hour)

	tok, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, "alice")
	}
}

func TestIssue_NoTTLOmitsExpiry(t *testing.T) {
	t.Parallel()

	svc := New("super-secret", 0)

	tok, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no exp claim, got %v", claims.ExpiresAt)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	svc := New(secret, time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tok, err := expired.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := svc.Validate(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := New("right-secret", 0).Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := New("wrong-secret", 0).Validate(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestValidate_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := New("k", 0).Validate("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestValidate_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"username":"alice"}`))
	tok := header + "." + payload + "."

	if _, err := New("k", 0).Validate(tok); err == nil {
		t.Fatalf("expected error for unsigned token, got nil")
	}
}

func TestValidate_MissingUsernameClaim(t *testing.T) {
	t.Parallel()

	secret := "secret"
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "something"})
	tok, err := anonymous.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := New(secret, 0).Validate(tok); err == nil {
		t.Fatalf("expected error for token without username, got nil")
	}
}
