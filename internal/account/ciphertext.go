package account

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLength = 16

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// EncryptPrivateKey seals the account's private key under a secret. The
// secret is needed to decrypt later, so it should be stored securely.
func EncryptPrivateKey(a *Account, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("secret cannot be empty")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	aead, err := newAEAD(secret, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, a.key.Bytes(), nil)

	payload := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	payload = append(payload, salt...)
	payload = append(payload, nonce...)
	payload = append(payload, sealed...)

	return base64.StdEncoding.EncodeToString(payload), nil
}

// DecryptPrivateKey recovers an account from a ciphertext produced by
// EncryptPrivateKey.
func DecryptPrivateKey(ciphertext, secret string) (*Account, error) {
	payload, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}
	if len(payload) < saltLength {
		return nil, fmt.Errorf("ciphertext too short")
	}

	salt := payload[:saltLength]
	aead, err := newAEAD(secret, salt)
	if err != nil {
		return nil, err
	}

	rest := payload[saltLength:]
	if len(rest) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce := rest[:aead.NonceSize()]
	sealed := rest[aead.NonceSize():]

	raw, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed")
	}

	return accountFromRawKey(raw)
}

func newAEAD(secret string, salt []byte) (cipher.AEAD, error) {
	derived, err := scrypt.Key([]byte(secret), salt, scryptN, scryptR, scryptP, 32)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return aead, nil
}
