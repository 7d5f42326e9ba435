package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract checks the behavior every backend shares.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("get absent returns nil nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(ctx, "token")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "token", []byte("eyJ.abc")))
		v, err := r.Get(ctx, "token")
		require.NoError(t, err)
		require.Equal(t, []byte("eyJ.abc"), v)
	})

	t.Run("set upserts", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "user", []byte("old")))
		require.NoError(t, r.Set(ctx, "user", []byte("new")))
		v, err := r.Get(ctx, "user")
		require.NoError(t, err)
		require.Equal(t, []byte("new"), v)
	})

	t.Run("delete many is idempotent", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "token", []byte("t")))
		require.NoError(t, r.Set(ctx, "user", []byte("u")))
		require.NoError(t, r.Set(ctx, "other", []byte("o")))

		require.NoError(t, r.Delete(ctx, "token", "user"))
		require.NoError(t, r.Delete(ctx, "token", "user"))
		require.NoError(t, r.Delete(ctx))

		for _, k := range []string{"token", "user"} {
			v, err := r.Get(ctx, k)
			require.NoError(t, err)
			require.Nil(t, v, k)
		}
		v, err := r.Get(ctx, "other")
		require.NoError(t, err)
		require.Equal(t, []byte("o"), v)
	})

	t.Run("list and clear", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
		require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, []byte{0xAA}, m["a"])
		assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])

		require.NoError(t, r.Clear(ctx))
		m, err = r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})
}
