package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Gunvolt24/wb_cart/internal/domain"
	"github.com/Gunvolt24/wb_cart/internal/ports"
	"github.com/Gunvolt24/wb_cart/pkg/metrics"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:snapshot:"

var _ ports.CartCache = (*CartCache)(nil)

// CartCache — снимки корзин в Redis (JSON, TTL на ключе).
// Общий для нескольких инстансов сервиса; ошибки Redis логируются и считаются промахом.
type CartCache struct {
	client goredis.Cmdable
	ttl    time.Duration
	log    ports.Logger
}

func NewCartCache(client goredis.Cmdable, ttl time.Duration, log ports.Logger) *CartCache {
	return &CartCache{client: client, ttl: ttl, log: log}
}

func (c *CartCache) Get(ctx context.Context, customerID string) (*domain.Cart, bool) {
	raw, err := c.client.Get(ctx, key(customerID)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warnf(ctx, "redis cart cache get: customer=%s err=%v", customerID, err)
		}
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// битый снимок не должен жить дальше
		c.log.Warnf(ctx, "redis cart cache decode: customer=%s err=%v", customerID, err)
		_ = c.client.Del(ctx, key(customerID)).Err()
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return &cart, true
}

func (c *CartCache) Set(ctx context.Context, cart *domain.Cart) error {
	if cart == nil || cart.CustomerID == "" {
		return nil
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key(cart.CustomerID), raw, c.ttl).Err(); err != nil {
		return err
	}
	metrics.CacheOps.WithLabelValues("set").Inc()
	return nil
}

func (c *CartCache) Invalidate(ctx context.Context, customerID string) error {
	removed, err := c.client.Del(ctx, key(customerID)).Result()
	if err != nil {
		return err
	}
	if removed > 0 {
		metrics.CacheOps.WithLabelValues("invalidated").Inc()
	}
	return nil
}

func key(customerID string) string { return keyPrefix + customerID }
