package mazestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const mazeKeyFmt = "amazeing:maze:%s"

// RedisStore persists maze documents in Redis with TTL support.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore initializes a RedisStore with the provided Redis client and TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) (i.MazeStore, error) {
	if client == nil {
		return nil, errors.New("nil redis client")
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

// Save stores the encoded maze document under id, replacing any previous
// document and restarting its expiration.
func (rs *RedisStore) Save(ctx context.Context, id uuid.UUID, document string) error {
	return rs.client.Set(ctx, mazeKey(id), document, rs.ttl).Err()
}

// ByID retrieves the encoded maze document stored under id.
// Returns ErrMazeNotFound when the key is missing or already expired.
func (rs *RedisStore) ByID(ctx context.Context, id uuid.UUID) (string, error) {
	document, err := rs.client.Get(ctx, mazeKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", i.ErrMazeNotFound
	}
	if err != nil {
		return "", err
	}

	return document, nil
}

func mazeKey(id uuid.UUID) string {
	return fmt.Sprintf(mazeKeyFmt, id)
}
