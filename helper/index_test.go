package helper

import (
	"errors"
	"testing"
	"time"

	"film_library/config"

	"github.com/golang-jwt/jwt/v5"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                "test-secret",
		AccessTokenExpireMinutes: 60,
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("secret124", hash) {
		t.Error("wrong password accepted")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateAccessToken(cfg, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	email, err := SubjectFromToken(cfg, token)
	if err != nil {
		t.Fatalf("SubjectFromToken: %v", err)
	}
	if email != "user@example.com" {
		t.Errorf("subject = %q, want user@example.com", email)
	}
}

func TestSubjectFromTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testConfig(), "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := &config.Config{JWTSecret: "other-secret", AccessTokenExpireMinutes: 60}
	if _, err := SubjectFromToken(other, token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSubjectFromTokenExpired(t *testing.T) {
	cfg := testConfig()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user@example.com",
		"kind": "access",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := SubjectFromToken(cfg, signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestSubjectFromTokenWrongKind(t *testing.T) {
	cfg := testConfig()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user@example.com",
		"kind": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := SubjectFromToken(cfg, signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for non-access kind, got %v", err)
	}
}

func TestSubjectFromTokenMissingSubject(t *testing.T) {
	cfg := testConfig()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"kind": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := SubjectFromToken(cfg, signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for empty subject, got %v", err)
	}
}

func TestSubjectFromTokenGarbage(t *testing.T) {
	if _, err := SubjectFromToken(testConfig(), "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
