package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ppiankov/dossier/internal/model"
)

// RedisStore keeps the dossier as a JSON string under one key
type RedisStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewRedisStore constructs a Redis-backed dossier store.
// The client lifecycle is managed by the caller.
func NewRedisStore(client *redis.Client, key string, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{
		client: client,
		key:    key,
		logger: logger,
	}
}

// Load fetches the dossier; a missing key is an empty dossier
func (s *RedisStore) Load(ctx context.Context) (*model.Dossier, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return &model.Dossier{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return unmarshal(data, "redis:"+s.key, s.logger), nil
}

// Save stores the dossier without expiry
func (s *RedisStore) Save(ctx context.Context, d *model.Dossier) error {
	data, err := marshal(d)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
