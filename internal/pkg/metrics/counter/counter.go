// Package counter keeps per-day usage counters in a Redis hash.
package counter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	FieldEntries      = "entries"
	FieldVisitors     = "visitors"
	FieldExports      = "exports"
	FieldRemoteErrors = "remote_errors"
)

// retention bounds how long a day's hash survives.
const retention = 35 * 24 * time.Hour

// Counter increments fields of one hash per day.
type Counter struct {
	rdb    *redis.Client
	prefix string
}

// New namespaces the daily hashes with prefix.
func New(rdb *redis.Client, prefix string) *Counter {
	return &Counter{rdb: rdb, prefix: prefix}
}

func (c *Counter) key(day time.Time) string {
	return c.prefix + day.Format("2006-01-02")
}

// Add increments field of the hash for day by n.
func (c *Counter) Add(ctx context.Context, day time.Time, field string, n int64) error {
	key := c.key(day)
	pipe := c.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, field, n)
	pipe.Expire(ctx, key, retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment %s: %w", field, err)
	}
	return nil
}

// Snapshot returns all counters of day. Unknown days yield an empty map.
func (c *Counter) Snapshot(ctx context.Context, day time.Time) (map[string]int64, error) {
	raw, err := c.rdb.HGetAll(ctx, c.key(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read counters: %w", err)
	}
	out := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}
