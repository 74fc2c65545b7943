package secrets

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moneyboy/internal/common"
	"github.com/dmitrijs2005/moneyboy/internal/cryptox"
)

const (
	reservedPrefix = "__"
	saltKey        = reservedPrefix + "kdf_salt"
	verifierKey    = reservedPrefix + "key_verifier"
)

// ErrKeyMismatch means the store was initialized with another device secret.
var ErrKeyMismatch = errors.New("device key does not match secret store")

type EncryptedStore struct {
	inner Store
	key   []byte
}

// NewEncryptedStore derives the value key from secret and a per-store salt
// kept in inner. The first call on an empty store generates the salt and a
// verifier; later calls fail with ErrKeyMismatch if secret has changed.
func NewEncryptedStore(ctx context.Context, inner Store, secret []byte) (*EncryptedStore, error) {
	salt, err := inner.Get(ctx, saltKey)
	if err != nil {
		return nil, err
	}

	if salt == nil {
		salt = common.GenerateRandByteArray(16)
		key := cryptox.DeriveMasterKey(secret, salt)
		if err := inner.SetMany(ctx, map[string][]byte{
			saltKey:     salt,
			verifierKey: cryptox.MakeVerifier(key),
		}); err != nil {
			return nil, fmt.Errorf("init encrypted store: %w", err)
		}
		return &EncryptedStore{inner: inner, key: key}, nil
	}

	key := cryptox.DeriveMasterKey(secret, salt)
	verifier, err := inner.Get(ctx, verifierKey)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(verifier, cryptox.MakeVerifier(key)) == 0 {
		return nil, ErrKeyMismatch
	}

	return &EncryptedStore{inner: inner, key: key}, nil
}

func isReserved(key string) bool {
	return strings.HasPrefix(key, reservedPrefix)
}

func (e *EncryptedStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := e.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}

	value, err := cryptox.Open(e.key, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt secret[%s]: %w", key, err)
	}
	return value, nil
}

func (e *EncryptedStore) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(e.key, value)
	if err != nil {
		return fmt.Errorf("failed to encrypt secret[%s]: %w", key, err)
	}
	return e.inner.Set(ctx, key, sealed)
}

func (e *EncryptedStore) SetMany(ctx context.Context, values map[string][]byte) error {
	sealed := make(map[string][]byte, len(values))
	for k, v := range values {
		s, err := cryptox.Seal(e.key, v)
		if err != nil {
			return fmt.Errorf("failed to encrypt secret[%s]: %w", k, err)
		}
		sealed[k] = s
	}
	return e.inner.SetMany(ctx, sealed)
}

func (e *EncryptedStore) Remove(ctx context.Context, key string) error {
	return e.inner.Remove(ctx, key)
}

func (e *EncryptedStore) List(ctx context.Context) (map[string][]byte, error) {
	all, err := e.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(all))
	for k, sealed := range all {
		if isReserved(k) {
			continue
		}
		value, err := cryptox.Open(e.key, sealed)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt secret[%s]: %w", k, err)
		}
		out[k] = value
	}
	return out, nil
}

// Clear removes every value but keeps the salt and verifier.
func (e *EncryptedStore) Clear(ctx context.Context) error {
	all, err := e.inner.List(ctx)
	if err != nil {
		return err
	}
	for k := range all {
		if isReserved(k) {
			continue
		}
		if err := e.inner.Remove(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
