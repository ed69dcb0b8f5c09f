package crypto

import (
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := KeyFromHex(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}

	plaintext := "12345678901"
	encrypted, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if encrypted == plaintext {
		t.Fatal("ciphertext equals plaintext")
	}

	decrypted, err := Decrypt(key, encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if decrypted != plaintext {
		t.Errorf("round trip = %q, want %q", decrypted, plaintext)
	}
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	key, _ := KeyFromHex(strings.Repeat("cd", 32))
	a, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two encryptions of the same value must differ")
	}
}

func TestKeyFromHexRejectsShortKeys(t *testing.T) {
	if _, err := KeyFromHex("abcd"); err == nil {
		t.Error("expected error for short key")
	}
}

func TestHashIsDeterministic(t *testing.T) {
	if Hash("205-1234") != Hash("205-1234") {
		t.Error("hash must be deterministic")
	}
	if Hash("205-1234") == Hash("205-1235") {
		t.Error("different inputs must not collide trivially")
	}
}
