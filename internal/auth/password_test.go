package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("swordfish")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "swordfish" {
		t.Fatal("hash equals plaintext")
	}

	if !VerifyPassword(hash, "swordfish") {
		t.Error("VerifyPassword = false for correct password")
	}
	if VerifyPassword(hash, "sword fish") {
		t.Error("VerifyPassword = true for wrong password")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("repeatable")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("repeatable")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical, want salted")
	}
}
