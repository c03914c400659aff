package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCodeStore keeps the currently valid confirmation code id (jti) per
// username. Writing a new code overwrites the previous one, so re-signup
// invalidates any earlier code, and deletion after redemption makes every
// code single-use. The TTL mirrors the code lifetime.
type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(rc *RedisClient) *RedisCodeStore {
	return &RedisCodeStore{client: rc.Client}
}

func codeKey(username string) string {
	return "confirmation_code:" + username
}

func (s *RedisCodeStore) Save(ctx context.Context, username, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, codeKey(username), jti, ttl).Err(); err != nil {
		return fmt.Errorf("save confirmation code: %w", err)
	}
	return nil
}

// Get returns the stored jti for a username, or "" when no code is pending.
func (s *RedisCodeStore) Get(ctx context.Context, username string) (string, error) {
	jti, err := s.client.Get(ctx, codeKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get confirmation code: %w", err)
	}
	return jti, nil
}

func (s *RedisCodeStore) Delete(ctx context.Context, username string) error {
	if err := s.client.Del(ctx, codeKey(username)).Err(); err != nil {
		return fmt.Errorf("delete confirmation code: %w", err)
	}
	return nil
}
