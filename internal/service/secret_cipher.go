package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// XChaChaSecretCipher implements ports.SecretCipher using XChaCha20-Poly1305.
// Webhook signing secrets are stored sealed and only opened right before signing.
type XChaChaSecretCipher struct {
	key []byte // 32-byte key
}

// NewXChaChaSecretCipher creates a new cipher.
// hexKey must be a 64-character hex string (32 bytes decoded).
func NewXChaChaSecretCipher(hexKey string) (*XChaChaSecretCipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding secret key: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	return &XChaChaSecretCipher{key: key}, nil
}

// Seal encrypts plaintext.
// Returns hex-encoded string: nonce(24) + ciphertext.
func (s *XChaChaSecretCipher) Seal(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Open decrypts a hex-encoded sealed secret.
func (s *XChaChaSecretCipher) Open(sealedHex string) (string, error) {
	sealed, err := hex.DecodeString(sealedHex)
	if err != nil {
		return "", fmt.Errorf("decoding sealed secret: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return "", fmt.Errorf("sealed secret too short")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("opening secret: %w", err)
	}

	return string(plaintext), nil
}
