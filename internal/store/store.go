package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ppiankov/dossier/internal/model"
)

// DossierStore loads and persists the dossier aggregate
type DossierStore interface {
	// Load returns the stored dossier, or an empty one when absent or unparsable
	Load(ctx context.Context) (*model.Dossier, error)

	// Save persists the dossier as a whole
	Save(ctx context.Context, d *model.Dossier) error
}

// New creates the store selected by cfg. The returned close func releases backend resources.
func New(cfg model.StoreConfig, logger *zap.Logger) (DossierStore, func() error, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "file":
		return NewFileStore(cfg.Path, logger), func() error { return nil }, nil
	case "redis":
		opts, err := redisOptions(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		client := redis.NewClient(opts)
		return NewRedisStore(client, cfg.RedisKey, logger), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}

func redisOptions(addr string) (*redis.Options, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis store requires store.redis_addr")
	}
	if strings.Contains(addr, "://") {
		opts, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis URL: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{Addr: addr}, nil
}

func marshal(d *model.Dossier) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dossier: %w", err)
	}
	return append(data, '\n'), nil
}

// unmarshal decodes a stored dossier; corrupt data yields an empty dossier
func unmarshal(data []byte, source string, logger *zap.Logger) *model.Dossier {
	var d model.Dossier
	if err := json.Unmarshal(data, &d); err != nil {
		logger.Warn("stored dossier unparsable, starting empty",
			zap.String("source", source),
			zap.Error(err),
		)
		return &model.Dossier{}
	}
	return &d
}
