package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miva/mind-dashboard/internal/core"
	"github.com/miva/mind-dashboard/internal/testutil"
)

func TestRedisCacheRepo_Set_Get_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		key := "test:cache:1"
		value := []byte(`{"active_students":12}`)
		ttl := 5 * time.Minute

		require.NoError(t, repo.Set(ctx, key, value, ttl))

		result, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, value, result)

		actualTTL := client.TTL(ctx, key).Val()
		assert.True(t, actualTTL > 0 && actualTTL <= ttl)
	})

	t.Run("get non-existent key", func(t *testing.T) {
		result, err := repo.Get(ctx, "test:cache:missing")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("delete existing key", func(t *testing.T) {
		key := "test:cache:2"
		require.NoError(t, repo.Set(ctx, key, []byte("to be deleted"), time.Minute))

		deleted, err := repo.Delete(ctx, key)
		require.NoError(t, err)
		assert.True(t, deleted)

		result, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("delete non-existent key", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "test:cache:missing")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("health", func(t *testing.T) {
		assert.NoError(t, repo.Health(ctx))
	})
}

func TestRedisCacheRepo_EmptyKey(t *testing.T) {
	// Empty keys are rejected before any network call, so no server is needed.
	repo := NewRedisCacheRepo(nil)
	ctx := context.Background()

	err := repo.Set(ctx, "", []byte("x"), time.Minute)
	require.ErrorIs(t, err, ErrEmptyCacheKey)

	_, err = repo.Get(ctx, "")
	require.ErrorIs(t, err, ErrEmptyCacheKey)

	_, err = repo.Delete(ctx, "")
	require.ErrorIs(t, err, ErrEmptyCacheKey)
}

func TestRedisCacheRepo_BacksAggregateCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	repo := NewRedisCacheRepo(client)
	cache := core.NewAggregateCache(core.AggregateCacheOptions{
		Cache:  repo,
		Config: core.AggregateCacheConfig{TTL: time.Minute, KeyPrefix: "test:"},
	})
	ctx := context.Background()
	key := cache.Key("admin", "aggregates")

	calls := 0
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	first, err := core.Cached(ctx, cache, key, load)
	require.NoError(t, err)
	second, err := core.Cached(ctx, cache, key, load)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	_, err = repo.Delete(ctx, key)
	require.NoError(t, err)
	_, err = core.Cached(ctx, cache, key, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
