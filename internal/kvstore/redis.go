package kvstore

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

const DefaultRedisPrefix = "fittracker::"

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	redisClient *redis.Client
	prefix      string
}

func NewRedisStore(redisClient *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	cmd := s.redisClient.Get(ctx, s.prefix+key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return cmd.Val(), true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.redisClient.Set(ctx, s.prefix+key, value, 0).Err()
}
