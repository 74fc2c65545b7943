// Package cryptox wraps the primitives used to keep credentials encrypted at
// rest: argon2id key derivation, AES-GCM sealing and the device key file.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/moneyboy/internal/common"
	"github.com/dmitrijs2005/moneyboy/internal/filex"
	"golang.org/x/crypto/argon2"
)

// KeySize is the length of derived keys and of the device secret.
const KeySize = 32

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrInvalidKeyFile     = errors.New("invalid key file")
)

// MakeVerifier returns a one-way fingerprint of a derived key, used to detect
// that a store is being opened with a different device secret.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// DeriveMasterKey stretches secret with argon2id into a KeySize AES key.
func DeriveMasterKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with AES-GCM under key. A fresh random nonce is
// generated per call and prepended to the returned ciphertext.
func Seal(key, plaintext []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func Open(key, sealed []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ns := aesgcm.NonceSize()
	if len(sealed) < ns {
		return nil, ErrCiphertextTooShort
	}

	return aesgcm.Open(nil, sealed[:ns], sealed[ns:], nil)
}

// LoadOrCreateKeyFile returns the device secret stored at path. When the file
// does not exist a new random secret is written with 0600 permissions.
func LoadOrCreateKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != KeySize {
			return nil, fmt.Errorf("%w: %s has %d bytes", ErrInvalidKeyFile, path, len(data))
		}
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	secret := common.GenerateRandByteArray(KeySize)
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return secret, nil
}
