package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	dom "github.com/cookie-sid/job-application-tracker/internal/domain"
)

const (
	keyList   = "applications:list:"
	keySearch = "applications:search:"
	keyStats  = "applications:stats:"
)

// ApplicationCache caches per-user application lists, search results, and
// status stats in Redis.
type ApplicationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewApplicationCache returns a new ApplicationCache.
func NewApplicationCache(rdb *redis.Client, ttl time.Duration) *ApplicationCache {
	return &ApplicationCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for a user, or nil on miss.
func (c *ApplicationCache) GetList(ctx context.Context, userID string) ([]dom.Application, error) {
	return c.getApplications(ctx, keyList+userID)
}

// SetList stores a user's list.
func (c *ApplicationCache) SetList(ctx context.Context, userID string, list []dom.Application) error {
	return c.set(ctx, keyList+userID, list)
}

// GetSearch returns the cached search result for a user and query, or nil on miss.
func (c *ApplicationCache) GetSearch(ctx context.Context, userID, q string) ([]dom.Application, error) {
	return c.getApplications(ctx, keySearch+userID+":"+normalizeQuery(q))
}

// SetSearch stores a search result.
func (c *ApplicationCache) SetSearch(ctx context.Context, userID, q string, list []dom.Application) error {
	return c.set(ctx, keySearch+userID+":"+normalizeQuery(q), list)
}

// GetStats returns the cached stats for a user, or nil on miss.
func (c *ApplicationCache) GetStats(ctx context.Context, userID string) (*dom.ApplicationStats, error) {
	b, err := c.rdb.Get(ctx, keyStats+userID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats dom.ApplicationStats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SetStats stores a user's stats.
func (c *ApplicationCache) SetStats(ctx context.Context, userID string, stats dom.ApplicationStats) error {
	return c.set(ctx, keyStats+userID, stats)
}

// InvalidateAll removes a user's list, stats, and all search keys.
// Called on every write.
func (c *ApplicationCache) InvalidateAll(ctx context.Context, userID string) error {
	if err := c.rdb.Del(ctx, keyList+userID, keyStats+userID).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keySearch+userID+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *ApplicationCache) getApplications(ctx context.Context, key string) ([]dom.Application, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Application
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *ApplicationCache) set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func normalizeQuery(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
