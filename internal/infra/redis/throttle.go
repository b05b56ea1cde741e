package redis

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/pysyun/etherscan-transfers/internal/infra/explorer/etherscan"
)

const throttleKeyPrefix = "throttle"

// throttleSlotKey returns the key whose presence marks the current request
// slot as taken.
//
// Format: "throttle:slot:{name}"
func throttleSlotKey(name string) string {
	return fmt.Sprintf("%s:slot:%s", throttleKeyPrefix, name)
}

// slotStore is the part of the Redis client the throttle needs.
type slotStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
}

// throttle spaces requests across every process using the same key. A
// request may proceed once it manages to create the slot key, which expires
// after the interval.
type throttle struct {
	conn     slotStore
	key      string
	interval time.Duration
}

var _ etherscan.Throttle = (*throttle)(nil)

// Throttle returns an etherscan.Throttle shared through Redis under name.
// Processes using the same name and interval send at most one request per
// interval between them.
func (c *client) Throttle(name string, interval time.Duration) *throttle {
	return &throttle{
		conn:     c.conn,
		key:      throttleSlotKey(name),
		interval: interval,
	}
}

// Wait claims the next request slot with SET NX PX. While another process
// holds the slot it sleeps for the slot's remaining lifetime and tries again.
func (t *throttle) Wait(ctx context.Context) error {
	if t.interval <= 0 {
		return nil
	}

	for {
		claimed, err := t.conn.SetNX(ctx, t.key, time.Now().UnixMilli(), t.interval).Result()
		if err != nil {
			return err
		}
		if claimed {
			return nil
		}

		remaining, err := t.conn.PTTL(ctx, t.key).Result()
		if err != nil {
			return err
		}

		timer := time.NewTimer(max(remaining, time.Millisecond))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
