package secrets

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	v, err := s.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set(ctx, "access_token", []byte("A")))
	require.NoError(t, s.SetMany(ctx, map[string][]byte{"refresh_token": []byte("R"), "user": []byte("{}")}))

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 3)

	require.NoError(t, s.Remove(ctx, "user"))
	require.NoError(t, s.Remove(ctx, "user"))
	v, err = s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Clear(ctx))
	m, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("token")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), out)

	out[0] = 'Y'
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("token"), again)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "access_token", []byte("A"))
			_, _ = s.Get(ctx, "access_token")
			_ = s.Remove(ctx, "access_token")
		}()
	}
	wg.Wait()
}
