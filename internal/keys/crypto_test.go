package keys

import (
	"strings"
	"testing"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestCipherRoundTrip(t *testing.T) {
	c, err := NewCipher(testKeyHex)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	sealed, err := c.Encrypt("sk-test-credential")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if sealed == "sk-test-credential" {
		t.Fatal("ciphertext equals plaintext")
	}

	plain, err := c.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if plain != "sk-test-credential" {
		t.Errorf("roundtrip = %q", plain)
	}
}

func TestNewCipherRejectsBadKey(t *testing.T) {
	if _, err := NewCipher("abcd"); err == nil {
		t.Error("short key accepted")
	}
	if _, err := NewCipher("zz" + testKeyHex[2:]); err == nil {
		t.Error("non-hex key accepted")
	}
}

func TestDecryptRejectsTamper(t *testing.T) {
	c, _ := NewCipher(testKeyHex)
	sealed, _ := c.Encrypt("secret")

	// flip a character inside the base64 payload
	tampered := []byte(sealed)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}
	if _, err := c.Decrypt(string(tampered)); err == nil {
		t.Error("tampered ciphertext accepted")
	}

	if _, err := c.Decrypt("AAAA"); err == nil || !strings.Contains(err.Error(), "too short") {
		t.Errorf("short ciphertext err = %v", err)
	}
}
