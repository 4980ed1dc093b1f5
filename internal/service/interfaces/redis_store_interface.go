package interfaces

import (
	"context"
	"time"
)

// RedisStoreOperations defines basic Redis operations
type RedisStoreOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (interface{}, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SaveRate(ctx context.Context, from, to string, rate float64) error
	GetRate(ctx context.Context, from, to string) (float64, bool, error)
}
