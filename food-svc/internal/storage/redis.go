package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foods-backend/food-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	foodListKey    = "foods:all"
	foodVersionKey = "foods:version"
)

// RedisCache caches the food list. Every insert bumps foodVersionKey, and a
// list is only stored if the version it was read under is still current.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// GetFoods reports false on a cache miss.
func (c *RedisCache) GetFoods(ctx context.Context) ([]domain.Food, bool, error) {
	payload, err := c.Client.Get(ctx, foodListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var foods []domain.Food
	if err := json.Unmarshal(payload, &foods); err != nil {
		return nil, false, err
	}
	return foods, true, nil
}

// FoodsVersion must be read before the table snapshot that is later passed
// to SetFoods.
func (c *RedisCache) FoodsVersion(ctx context.Context) (int64, error) {
	return readVersion(ctx, c.Client)
}

// SetFoods stores foods only if no insert happened since version was read.
// It reports whether the list was stored.
func (c *RedisCache) SetFoods(ctx context.Context, foods []domain.Food, version int64) (bool, error) {
	payload, err := json.Marshal(foods)
	if err != nil {
		return false, err
	}

	stored := false
	err = c.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, foodListKey, payload, c.TTL)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, foodVersionKey)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	return stored, err
}

// InvalidateFoods bumps the version and drops the cached list in one transaction.
func (c *RedisCache) InvalidateFoods(ctx context.Context) error {
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, foodVersionKey)
		pipe.Del(ctx, foodListKey)
		return nil
	})
	return err
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readVersion(ctx context.Context, cmd stringGetter) (int64, error) {
	version, err := cmd.Get(ctx, foodVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}
