package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys so the store can share a Redis
// database with other features (rate limiting).
const keyPrefix = "session:"

// RedisStore keeps sessions in Redis, one string key per token with
// the TTL applied at SET time. Redis handles expiry itself, so
// Resolve only has to distinguish a missing key from a transport
// error. This is the production backend: sessions survive a backend
// process restart but not a Redis restart, which matches the
// ephemeral contract of the store.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, username string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, username, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	username, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
