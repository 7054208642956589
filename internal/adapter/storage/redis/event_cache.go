package redis

import (
	"context"
	"fmt"
	"time"

	"inspection-billing/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventCache implements ports.EventCache. It only short-circuits
// redeliveries; the event log stays authoritative.
type EventCache struct {
	client *goredis.Client
	prefix string
}

// NewEventCache creates a new Redis-backed webhook event cache.
func NewEventCache(client *goredis.Client) *EventCache {
	return &EventCache{
		client: client,
		prefix: "webhook:seen:",
	}
}

func (c *EventCache) key(provider domain.Provider, eventID string) string {
	return c.prefix + string(provider) + ":" + eventID
}

// Seen reports whether the event was marked within its TTL.
func (c *EventCache) Seen(ctx context.Context, provider domain.Provider, eventID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(provider, eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis event cache exists: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records the event for ttl.
func (c *EventCache) MarkSeen(ctx context.Context, provider domain.Provider, eventID string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(provider, eventID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis event cache set: %w", err)
	}
	return nil
}
