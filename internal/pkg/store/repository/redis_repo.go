package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"currencyconversion/internal/pkg/consts"
)

type RedisStoreAdapter struct {
	client *redis.Client
}

func NewRedisStoreAdapter(client *redis.Client) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client}
}

func (a *RedisStoreAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return a.client.Set(ctx, key, value, expiration).Err()
}

func (a *RedisStoreAdapter) Get(ctx context.Context, key string) (interface{}, error) {
	return a.client.Get(ctx, key).Bytes()
}

func (a *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

func (a *RedisStoreAdapter) Exists(ctx context.Context, key string) (bool, error) {
	val, err := a.client.Exists(ctx, key).Result()
	return val > 0, err
}

// RateKeyBuilder builds the cache key for one currency pair.
func RateKeyBuilder(from, to string) string {
	return fmt.Sprintf("fxRate:%s:%s", from, to)
}

// SaveRate caches a resolved spot rate for the provider-side cache window.
func (a *RedisStoreAdapter) SaveRate(ctx context.Context, from, to string, rate float64) error {
	value := strconv.FormatFloat(rate, 'f', -1, 64)
	return a.Set(ctx, RateKeyBuilder(from, to), value, consts.RateCacheTTL)
}

// GetRate returns the cached rate for the pair and whether one was found.
func (a *RedisStoreAdapter) GetRate(ctx context.Context, from, to string) (float64, bool, error) {
	raw, err := a.client.Get(ctx, RateKeyBuilder(from, to)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("malformed cached rate %q: %w", raw, err)
	}

	return rate, true, nil
}
