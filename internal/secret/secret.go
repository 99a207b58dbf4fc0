// Package secret seals small strings (SMTP app passwords) with AES-256-GCM
// under a server-held key. Sealing is reversible on purpose: login only
// needs verification, but outbound sending needs the plaintext back.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrDecryptFailed means the ciphertext did not authenticate under this
// key. Distinct from an absent credential.
var ErrDecryptFailed = errors.New("decryption failed")

const nonceSize = 12

// Box performs authenticated encryption under a fixed key.
type Box struct {
	key []byte
}

// NewBox derives a 256-bit key from the configured key material via
// SHA-256, so operators can supply a passphrase of any length.
func NewBox(keyMaterial string) *Box {
	sum := sha256.Sum256([]byte(keyMaterial))
	return &Box{key: sum[:]}
}

// Seal encrypts plaintext and returns base64(nonce || ciphertext).
// A fresh random nonce is generated per call.
func (b *Box) Seal(plaintext string) (string, error) {
	aead, err := b.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Returns ErrDecryptFailed when the payload is
// malformed or was sealed under a different key.
func (b *Box) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize {
		return "", ErrDecryptFailed
	}

	aead, err := b.aead()
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plaintext), nil
}

func (b *Box) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(b.key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
