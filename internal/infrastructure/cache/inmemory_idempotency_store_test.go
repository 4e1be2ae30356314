package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore_SetNX(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()
	ctx := context.Background()

	t.Run("first write wins", func(t *testing.T) {
		ok, value, err := store.SetNX(ctx, "key-1", "voucher-a", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "voucher-a", value)
	})

	t.Run("second write returns existing value", func(t *testing.T) {
		ok, value, err := store.SetNX(ctx, "key-1", "voucher-b", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "voucher-a", value)
	})

	t.Run("expired key can be reclaimed", func(t *testing.T) {
		ok, _, err := store.SetNX(ctx, "key-short", "first", 10*time.Millisecond)
		require.NoError(t, err)
		assert.True(t, ok)

		time.Sleep(20 * time.Millisecond)

		ok, value, err := store.SetNX(ctx, "key-short", "second", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", value)
	})
}

func TestInMemoryIdempotencyStore_Get(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()
	ctx := context.Background()

	t.Run("absent key returns empty string", func(t *testing.T) {
		value, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("stored key returns value", func(t *testing.T) {
		_, _, err := store.SetNX(ctx, "key-get", "stored", time.Minute)
		require.NoError(t, err)

		value, err := store.Get(ctx, "key-get")
		require.NoError(t, err)
		assert.Equal(t, "stored", value)
	})

	t.Run("expired key returns empty string", func(t *testing.T) {
		_, _, err := store.SetNX(ctx, "key-expired", "stored", 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		value, err := store.Get(ctx, "key-expired")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestInMemoryIdempotencyStore_Delete(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()
	ctx := context.Background()

	_, _, err := store.SetNX(ctx, "key-del", "first", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "key-del"))

	// The key can be reserved again after deletion.
	ok, value, err := store.SetNX(ctx, "key-del", "second", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "never-set"))
}

func TestInMemoryIdempotencyStore_ConcurrentSetNX(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _, err := store.SetNX(ctx, "contested", "value", time.Minute)
			require.NoError(t, err)
			if ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Exactly one goroutine may claim the key
	assert.Equal(t, 1, winners)
}

func TestInMemoryIdempotencyStore_Cleanup(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()
	ctx := context.Background()

	_, _, err := store.SetNX(ctx, "a", "1", 10*time.Millisecond)
	require.NoError(t, err)
	_, _, err = store.SetNX(ctx, "b", "2", time.Minute)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	store.cleanup()

	assert.Equal(t, 1, store.Size())
}

func TestInMemoryIdempotencyStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryIdempotencyStore()

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
