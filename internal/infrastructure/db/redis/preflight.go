package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPreflightTTL = 10 * time.Minute

// PreflightCache remembers sender addresses whose SMTP credentials passed
// a pre-flight probe recently, so back-to-back bulk sends skip the
// handshake. Key format: preflight:<sender_address>
type PreflightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreflightCache wraps the given Redis client. A non-positive ttl falls
// back to the default.
func NewPreflightCache(client *redis.Client, ttl time.Duration) *PreflightCache {
	if ttl <= 0 {
		ttl = defaultPreflightTTL
	}
	return &PreflightCache{client: client, ttl: ttl}
}

// IsVerified reports whether this sender passed a pre-flight within the TTL.
func (c *PreflightCache) IsVerified(ctx context.Context, sender string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(sender)).Result()
	if err != nil {
		return false, fmt.Errorf("preflight lookup: %w", err)
	}
	return n > 0, nil
}

// MarkVerified records a successful pre-flight (expires after the TTL).
// Only positive results are cached: a failed probe must be retried.
func (c *PreflightCache) MarkVerified(ctx context.Context, sender string) error {
	return c.client.Set(ctx, c.key(sender), "1", c.ttl).Err()
}

func (c *PreflightCache) key(sender string) string {
	return "preflight:" + sender
}
