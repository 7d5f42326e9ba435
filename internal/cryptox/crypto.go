// Package cryptox seals values kept in the local session store.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize selects AES-256.
	KeySize = 32
	// SaltSize is the length of the random salt stored next to sealed data.
	SaltSize = 16
)

var (
	ErrInvalidKeySize  = errors.New("invalid key size")
	ErrShortCiphertext = errors.New("ciphertext too short")
)

// DeriveKey stretches a passphrase into a KeySize key with argon2id.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with AES-GCM. The output is nonce||ciphertext.
// additional is authenticated but not encrypted; Open must be given the
// same value.
func Seal(plaintext, key, additional []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, additional), nil
}

// Open reverses Seal.
func Open(sealed, key, additional []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ns := aesgcm.NonceSize()
	if len(sealed) < ns+aesgcm.Overhead() {
		return nil, ErrShortCiphertext
	}

	return aesgcm.Open(nil, sealed[:ns], sealed[ns:], additional)
}
