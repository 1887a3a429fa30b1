package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a redis denylist. Keys expire on their
// own once every token issued before the revocation has expired too.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		ctx:    ctx,
	}, nil
}

func revocationKey(userID uuid.UUID) string {
	return fmt.Sprintf("revoked:%s", userID)
}

func (r *RedisStore) Revoke(userID uuid.UUID, ttl time.Duration) error {
	return r.client.Set(r.ctx, revocationKey(userID), "1", ttl).Err()
}

func (r *RedisStore) IsRevoked(userID uuid.UUID) (bool, error) {
	n, err := r.client.Exists(r.ctx, revocationKey(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
