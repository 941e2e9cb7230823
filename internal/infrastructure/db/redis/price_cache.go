package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/otokita/catalog-api/internal/api/metrics"
	"github.com/otokita/catalog-api/internal/core/ports"
)

const (
	priceVersionKey = "price:version"
	pricePageTTL    = 5 * time.Minute
)

// PriceCache stores denormalised price list pages under versioned keys.
// Key format: price:v<version>:list:<limit>:<skip>. Invalidate bumps the
// version counter, so every cached page goes stale at once; old keys simply
// expire. All failures degrade to a cache miss.
type PriceCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewPriceCache(client *redis.Client, log zerolog.Logger) *PriceCache {
	return &PriceCache{client: client, log: log}
}

type cachedPage struct {
	Views []ports.PriceView `json:"views"`
	Total int64             `json:"total"`
}

func (c *PriceCache) GetPage(ctx context.Context, limit, skip int64) ([]ports.PriceView, int64, bool) {
	key, err := c.pageKey(ctx, limit, skip)
	if err != nil {
		return nil, 0, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("price cache read failed")
		}
		metrics.PriceCacheTotal.WithLabelValues("miss").Inc()
		return nil, 0, false
	}

	var page cachedPage
	if err := json.Unmarshal(raw, &page); err != nil {
		c.log.Warn().Err(err).Msg("price cache entry corrupt")
		metrics.PriceCacheTotal.WithLabelValues("miss").Inc()
		return nil, 0, false
	}
	metrics.PriceCacheTotal.WithLabelValues("hit").Inc()
	return page.Views, page.Total, true
}

func (c *PriceCache) SetPage(ctx context.Context, limit, skip int64, views []ports.PriceView, total int64) {
	key, err := c.pageKey(ctx, limit, skip)
	if err != nil {
		return
	}

	raw, err := json.Marshal(cachedPage{Views: views, Total: total})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, pricePageTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("price cache write failed")
	}
}

// Invalidate bumps the version counter so subsequent reads miss.
func (c *PriceCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, priceVersionKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("price cache invalidation failed")
	}
}

func (c *PriceCache) pageKey(ctx context.Context, limit, skip int64) (string, error) {
	version, err := c.client.Get(ctx, priceVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("price:v%d:list:%d:%d", version, limit, skip), nil
}
