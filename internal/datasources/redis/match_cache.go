// Package redis caches match results in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shamanshetty/TradeCraft/internal/datasources"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

var _ datasources.MatchCache = (*MatchCache)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultConfig() Config {
	return Config{
		Addr: "localhost:6379",
		TTL:  10 * time.Minute,
	}
}

// MatchCache stores match results as JSON. When Redis cannot be reached at
// startup the cache is bypassed: reads miss and writes are dropped.
type MatchCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger

	warnedUnavailable atomic.Bool
}

func NewMatchCache(ctx context.Context, config Config, logger *slog.Logger) *MatchCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.WarnContext(ctx, "redis unavailable, bypassing match cache", "addr", config.Addr, "error", err)
		_ = client.Close()
		client = nil
	}

	return &MatchCache{client: client, ttl: config.TTL, logger: logger}
}

// Available reports whether the cache is backed by a live Redis connection.
func (c *MatchCache) Available() bool {
	return c != nil && c.client != nil
}

func (c *MatchCache) GetMatches(ctx context.Context, key string) (*domain.MatchResult, error) {
	if !c.Available() {
		return nil, nil
	}

	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		c.warnUnavailableOnce(ctx, err)
		return nil, fmt.Errorf("reading cached matches: %w", err)
	}

	var result domain.MatchResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, fmt.Errorf("decoding cached matches: %w", err)
	}
	return &result, nil
}

func (c *MatchCache) SetMatches(ctx context.Context, key string, result domain.MatchResult) error {
	if !c.Available() {
		return nil
	}

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding matches: %w", err)
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		c.warnUnavailableOnce(ctx, err)
		return fmt.Errorf("writing cached matches: %w", err)
	}
	return nil
}

func (c *MatchCache) Close() error {
	if !c.Available() {
		return nil
	}
	return c.client.Close()
}

func (c *MatchCache) warnUnavailableOnce(ctx context.Context, err error) {
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		c.logger.WarnContext(ctx, "redis match cache failing", "error", err)
	}
}
