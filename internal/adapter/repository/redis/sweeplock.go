package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SweepLock guards the daily recurrence sweep against concurrent or
// re-delivered cron triggers. The lock key carries the sweep date, so a
// crashed run blocks re-entry only until the TTL expires.
type SweepLock struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSweepLock creates a new SweepLock.
func NewSweepLock(client *redis.Client, ttl time.Duration) *SweepLock {
	return &SweepLock{
		client: client,
		prefix: "sweep:lock:",
		ttl:    ttl,
	}
}

// Acquire claims the lock for the given day. It returns false when another
// run already holds it.
func (l *SweepLock) Acquire(ctx context.Context, day string) (bool, error) {
	return l.client.SetNX(ctx, l.prefix+day, "running", l.ttl).Result()
}

// Release frees the lock early, letting a failed sweep be retried without
// waiting for the TTL.
func (l *SweepLock) Release(ctx context.Context, day string) error {
	return l.client.Del(ctx, l.prefix+day).Err()
}
