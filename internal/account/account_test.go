package account

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewAccountFormats(t *testing.T) {
	acct, err := New()
	if err != nil {
		t.Fatalf("Failed to generate account: %v", err)
	}

	if !strings.HasPrefix(acct.String(), PrivateKeyPrefix) {
		t.Errorf("Private key should start with %s", PrivateKeyPrefix)
	}
	if !strings.HasPrefix(acct.Address(), AddressPrefix) {
		t.Errorf("Address should start with %s", AddressPrefix)
	}
	if !strings.HasPrefix(acct.ViewKey(), ViewKeyPrefix) {
		t.Errorf("View key should start with %s", ViewKeyPrefix)
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	acct, err := New()
	if err != nil {
		t.Fatalf("Failed to generate account: %v", err)
	}

	restored, err := FromString(acct.String())
	if err != nil {
		t.Fatalf("Failed to restore account: %v", err)
	}

	if restored.Address() != acct.Address() {
		t.Error("Restored account must keep the same address")
	}
	if restored.ViewKey() != acct.ViewKey() {
		t.Error("Restored account must keep the same view key")
	}

	if _, err := FromString("not-a-private-key"); err == nil {
		t.Error("Expected error for key without prefix")
	}
	if _, err := FromString(PrivateKeyPrefix + "!!!not-base58!!!"); err == nil {
		t.Error("Expected error for malformed base58")
	}
}

func TestFromSeedIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, SeedLength)

	a, err := FromSeed(seed)
	if err != nil {
		t.Fatalf("Failed to derive account: %v", err)
	}
	b, err := FromSeed(seed)
	if err != nil {
		t.Fatalf("Failed to derive account: %v", err)
	}

	if a.String() != b.String() || a.Address() != b.Address() {
		t.Error("Same seed must derive the same account")
	}

	other, err := FromSeed(bytes.Repeat([]byte{0x43}, SeedLength))
	if err != nil {
		t.Fatalf("Failed to derive account: %v", err)
	}
	if other.Address() == a.Address() {
		t.Error("Different seeds should derive different accounts")
	}

	if _, err := FromSeed([]byte{1, 2, 3}); err == nil {
		t.Error("Expected error for short seed")
	}
}

func TestSignAndVerify(t *testing.T) {
	acct, err := New()
	if err != nil {
		t.Fatalf("Failed to generate account: %v", err)
	}

	message := []byte("deploy scores.zk v1")
	sig, err := acct.Sign(message)
	if err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}

	ok, err := VerifySignature(acct.Address(), message, sig)
	if err != nil {
		t.Fatalf("Verification errored: %v", err)
	}
	if !ok {
		t.Error("Signature should verify against the signer's address")
	}

	ok, _ = VerifySignature(acct.Address(), []byte("different message"), sig)
	if ok {
		t.Error("Signature must not verify for a different message")
	}

	stranger, err := New()
	if err != nil {
		t.Fatalf("Failed to generate account: %v", err)
	}
	ok, _ = VerifySignature(stranger.Address(), message, sig)
	if ok {
		t.Error("Signature must not verify against another address")
	}

	if _, err := VerifySignature("bogus", message, sig); err == nil {
		t.Error("Expected error for malformed address")
	}
}

func TestEncryptDecryptPrivateKey(t *testing.T) {
	acct, err := New()
	if err != nil {
		t.Fatalf("Failed to generate account: %v", err)
	}

	ciphertext, err := EncryptPrivateKey(acct, "correct horse battery staple")
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	restored, err := DecryptPrivateKey(ciphertext, "correct horse battery staple")
	if err != nil {
		t.Fatalf("Failed to decrypt: %v", err)
	}
	if restored.Address() != acct.Address() {
		t.Error("Decrypted account must keep the same address")
	}

	if _, err := DecryptPrivateKey(ciphertext, "wrong secret"); err == nil {
		t.Error("Decryption with the wrong secret must fail")
	}
	if _, err := EncryptPrivateKey(acct, ""); err == nil {
		t.Error("Empty secret must be rejected")
	}
	if _, err := DecryptPrivateKey("not-base64!!", "secret"); err == nil {
		t.Error("Malformed ciphertext must be rejected")
	}
	if _, err := DecryptPrivateKey("AAAA", "secret"); err == nil {
		t.Error("Truncated ciphertext must be rejected")
	}
}
