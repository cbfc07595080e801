package bcrypthash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h := New(bcrypt.MinCost)

	hashed, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hashed == "secret123" {
		t.Fatalf("expected hash, got plaintext")
	}

	if err := h.Compare(hashed, "secret123"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(hashed, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
