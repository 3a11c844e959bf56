package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBridge maps the keyspace straight onto redis strings. No expiry is
// set at this layer; the keys live as long as the session data they hold.
type RedisBridge struct {
	client *redis.Client
}

func NewRedisBridge(client *redis.Client) *RedisBridge {
	return &RedisBridge{client: client}
}

func (r *RedisBridge) Load(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisBridge) Save(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisBridge) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
