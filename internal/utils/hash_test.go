package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" || hash == "s3cret" {
		t.Fatal("expected non-empty hash distinct from the password")
	}

	ok, err := VerifyPassword(hash, "s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !ok {
		t.Error("expected password to verify against its own hash")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if h1 == h2 {
		t.Error("expected two hashes of the same password to differ (bcrypt salt)")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("right")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	ok, err := VerifyPassword(hash, "wrong")
	if err != nil {
		t.Fatalf("mismatch should not be an error, got: %v", err)
	}
	if ok {
		t.Error("expected mismatch for wrong password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("not-a-bcrypt-hash", "pw")
	if ok {
		t.Error("expected ok=false for malformed hash")
	}
	if err == nil || !strings.Contains(err.Error(), "error verifying password") {
		t.Errorf("expected wrapped verification error, got: %v", err)
	}
}
