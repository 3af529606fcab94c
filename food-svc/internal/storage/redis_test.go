package storage

import (
	"context"
	"testing"
	"time"

	"foods-backend/food-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

// storeFoods writes foods under the current version.
func storeFoods(t *testing.T, cache *RedisCache, foods []domain.Food) {
	t.Helper()
	ctx := context.Background()
	version, err := cache.FoodsVersion(ctx)
	require.NoError(t, err)
	stored, err := cache.SetFoods(ctx, foods, version)
	require.NoError(t, err)
	require.True(t, stored)
}

func TestRedisCache_MissThenHit(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	foods, ok, err := cache.GetFoods(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, foods)

	want := []domain.Food{{ID: 1, Name: "Apple", Price: 1.5}, {ID: 2, Name: "Pear", Price: 2}}
	storeFoods(t, cache, want)
	assert.Equal(t, time.Minute, mr.TTL(foodListKey))

	foods, ok, err = cache.GetFoods(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, foods)
}

func TestRedisCache_EmptyListIsAHit(t *testing.T) {
	cache, _ := setupCache(t)

	storeFoods(t, cache, []domain.Food{})

	foods, ok, err := cache.GetFoods(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, foods)
}

func TestRedisCache_InvalidateBumpsVersion(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	storeFoods(t, cache, []domain.Food{{ID: 1, Name: "Apple", Price: 1.5}})
	before, err := cache.FoodsVersion(ctx)
	require.NoError(t, err)

	require.NoError(t, cache.InvalidateFoods(ctx))

	after, err := cache.FoodsVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
	assert.False(t, mr.Exists(foodListKey))
	_, ok, err := cache.GetFoods(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_SnapshotOlderThanInsertIsNotStored(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	version, err := cache.FoodsVersion(ctx)
	require.NoError(t, err)

	// an insert lands between reading the version and writing the list
	require.NoError(t, cache.InvalidateFoods(ctx))

	stored, err := cache.SetFoods(ctx, []domain.Food{}, version)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.False(t, mr.Exists(foodListKey))
}

func TestRedisCache_Expires(t *testing.T) {
	cache, mr := setupCache(t)

	storeFoods(t, cache, []domain.Food{{ID: 1, Name: "Apple", Price: 1.5}})
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.GetFoods(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_CorruptPayload(t *testing.T) {
	cache, mr := setupCache(t)
	require.NoError(t, mr.Set(foodListKey, "not json"))

	_, ok, err := cache.GetFoods(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	cache := NewRedisCache(client, time.Minute)
	mr.Close()

	_, _, err = cache.GetFoods(context.Background())
	assert.Error(t, err)

	_, err = cache.FoodsVersion(context.Background())
	assert.Error(t, err)
}
