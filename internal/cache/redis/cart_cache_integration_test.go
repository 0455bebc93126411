//go:build integration

package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_cart/internal/cache/redis"
	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func startRedis(ctx context.Context, t *testing.T) string {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestRedisCartCache_SetGetInvalidate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := redis.Connect(ctx, startRedis(ctx, t), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cache := redis.NewCartCache(client, time.Minute, noopLogger{})

	_, ok := cache.Get(ctx, "cust-1")
	require.False(t, ok, "miss before Set")

	cart := &domain.Cart{
		ExternalID: "cart-1", ShopName: "shop", Name: "default", CustomerID: "cust-1",
		CurrencyCode: "USD",
		Lines: []domain.CartLine{{ExternalID: "l1", ProductID: "p1", CatalogName: "main", Quantity: 2, UnitPrice: 500, LineTotal: 1000}},
		Totals: domain.Totals{Subtotal: 1000, Total: 1000},
	}
	require.NoError(t, cache.Set(ctx, cart))

	got, ok := cache.Get(ctx, "cust-1")
	require.True(t, ok)
	require.Equal(t, cart, got)

	ttl, err := client.TTL(ctx, "cart:snapshot:cust-1").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, cache.Invalidate(ctx, "cust-1"))
	_, ok = cache.Get(ctx, "cust-1")
	require.False(t, ok, "miss after Invalidate")

	require.NoError(t, cache.Invalidate(ctx, "never-cached"))
}

func TestRedisCartCache_CorruptSnapshotIsMiss(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := redis.Connect(ctx, startRedis(ctx, t), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(ctx, "cart:snapshot:broken", "{not-json", 0).Err())

	cache := redis.NewCartCache(client, time.Minute, noopLogger{})
	_, ok := cache.Get(ctx, "broken")
	require.False(t, ok)

	exists, err := client.Exists(ctx, "cart:snapshot:broken").Result()
	require.NoError(t, err)
	require.Zero(t, exists, "corrupt snapshot must be dropped")
}
