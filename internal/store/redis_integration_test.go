//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/ppiankov/dossier/internal/model"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "start redis container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	addr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(addr)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisStore_Integration(t *testing.T) {
	ctx := context.Background()
	client := newRedisClient(t)
	s := NewRedisStore(client, "dossier:v1:test", nil)

	empty, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, &model.Dossier{}, empty)

	in := &model.Dossier{
		EntityName:      "Acme LLC",
		KYBStatus:       model.KYBApproved,
		RegulatoryFlags: model.Flags{model.FlagCritical},
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "Acme LLC", out.EntityName)
	require.True(t, out.RegulatoryFlags.Has(model.FlagCritical))

	require.NoError(t, client.Set(ctx, "dossier:v1:test", "garbage", 0).Err())
	corrupt, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "", corrupt.EntityName)
}
