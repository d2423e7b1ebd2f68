package user

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionTokenPrefix = "sessionToken:"

// RedisSessionStore implements SessionStore on the auth cache Redis DB.
type RedisSessionStore struct {
	Client *redis.Client
}

func (s *RedisSessionStore) SaveToken(userID, tokenHash string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.Client.Set(ctx, sessionTokenPrefix+userID, tokenHash, ttl).Err()
}

func (s *RedisSessionStore) GetToken(userID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := s.Client.Get(ctx, sessionTokenPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

func (s *RedisSessionStore) DeleteToken(userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.Client.Del(ctx, sessionTokenPrefix+userID).Err()
}
