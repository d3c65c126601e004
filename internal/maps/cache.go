// README: Redis read-through cache in front of the Directions provider.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rovia/internal/types"
)

// Router is the lookup the cache wraps. *RouteService satisfies it.
type Router interface {
	Route(ctx context.Context, origin, destination types.Point) (Estimate, error)
}

// CachedRouter serves route estimates from Redis and falls through to
// the live provider on miss. Cache failures never fail the lookup.
type CachedRouter struct {
	inner Router
	redis *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedRouter(inner Router, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedRouter {
	return &CachedRouter{inner: inner, redis: rdb, ttl: ttl, log: log}
}

func (c *CachedRouter) Route(ctx context.Context, origin, destination types.Point) (Estimate, error) {
	key := routeKey(origin, destination)

	if raw, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var est Estimate
		if json.Unmarshal(raw, &est) == nil {
			return est, nil
		}
	} else if err != redis.Nil {
		c.log.Debug("route cache read failed", zap.Error(err))
	}

	est, err := c.inner.Route(ctx, origin, destination)
	if err != nil {
		return Estimate{}, err
	}

	if raw, err := json.Marshal(est); err == nil {
		if err := c.redis.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Debug("route cache write failed", zap.Error(err))
		}
	}
	return est, nil
}

// routeKey quantizes coordinates to ~11m so nearby pin adjustments hit
// the same entry.
func routeKey(origin, destination types.Point) string {
	return fmt.Sprintf("route:%.4f,%.4f:%.4f,%.4f", origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}
