package utils

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hashed, "s3cret-pass") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hashed, "wrong-pass") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("CheckPassword accepted a malformed hash")
	}
}
