package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache is a redis-backed cache for the read-only report responses.
// Every entity write bumps a data revision counter; cache keys embed the
// revision, so a report is never served stale. A nil *ReportCache (or a nil
// client inside it) degrades to a permanent miss, the same pattern the rest
// of the optional infrastructure uses.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

const revisionKey = "campus:data_revision"

func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{rdb: rdb, ttl: ttl}
}

// Connect dials redis and pings it. Returns nil client on failure so the
// caller can run without caching.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	return rdb, nil
}

// Get returns the cached payload for report, or ok=false on a miss.
func (c *ReportCache) Get(ctx context.Context, report string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	key, err := c.key(ctx, report)
	if err != nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the payload for report under the current data revision.
func (c *ReportCache) Set(ctx context.Context, report string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}

	key, err := c.key(ctx, report)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key, payload, c.ttl)
}

// BumpRevision invalidates all cached reports by moving the revision
// forward. Called after any write to the underlying tables.
func (c *ReportCache) BumpRevision(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}

	c.rdb.Incr(ctx, revisionKey)
}

func (c *ReportCache) key(ctx context.Context, report string) (string, error) {
	rev, err := c.rdb.Get(ctx, revisionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("campus:reports:%s:rev%d", report, rev), nil
}
