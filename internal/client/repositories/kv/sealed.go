package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
)

// SaltKey holds the key-derivation salt inside the wrapped store.
const SaltKey = "_seal.salt"

var ErrSealBroken = errors.New("sealed value cannot be opened")

// SealedRepository encrypts every value before it reaches the wrapped
// repository. The key name is bound to the ciphertext, so a value copied
// under another key fails to open.
type SealedRepository struct {
	inner Repository
	salt  []byte
	key   []byte
}

// NewSealedRepository derives the sealing key from passphrase and the salt
// stored in inner, creating the salt on first use.
func NewSealedRepository(ctx context.Context, inner Repository, passphrase []byte) (*SealedRepository, error) {
	salt, err := inner.Get(ctx, SaltKey)
	if err != nil {
		return nil, err
	}
	if len(salt) == 0 {
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		if err := inner.Set(ctx, SaltKey, salt); err != nil {
			return nil, err
		}
	}

	return &SealedRepository{
		inner: inner,
		salt:  salt,
		key:   cryptox.DeriveKey(passphrase, salt),
	}, nil
}

func (r *SealedRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	return r.open(key, sealed)
}

func (r *SealedRepository) open(key string, sealed []byte) ([]byte, error) {
	plain, err := cryptox.Open(sealed, r.key, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("%w: kv[%s]: %v", ErrSealBroken, key, err)
	}
	return plain, nil
}

func (r *SealedRepository) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(value, r.key, []byte(key))
	if err != nil {
		return fmt.Errorf("failed to seal kv[%s]: %w", key, err)
	}
	return r.inner.Set(ctx, key, sealed)
}

func (r *SealedRepository) Delete(ctx context.Context, keys ...string) error {
	return r.inner.Delete(ctx, keys...)
}

func (r *SealedRepository) List(ctx context.Context) (map[string][]byte, error) {
	all, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(all))
	for k, v := range all {
		if k == SaltKey {
			continue
		}
		plain, err := r.open(k, v)
		if err != nil {
			return nil, err
		}
		out[k] = plain
	}
	return out, nil
}

// Clear empties the wrapped store and writes the salt back, so values set
// afterwards stay readable after a restart.
func (r *SealedRepository) Clear(ctx context.Context) error {
	if err := r.inner.Clear(ctx); err != nil {
		return err
	}
	return r.inner.Set(ctx, SaltKey, r.salt)
}

func (r *SealedRepository) Close() error {
	common.WipeByteArray(r.key)
	return r.inner.Close()
}
