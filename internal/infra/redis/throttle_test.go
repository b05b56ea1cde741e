package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlots scripts SetNX outcomes: claims[i] answers the i-th call, later
// calls claim the slot unless held is set.
type fakeSlots struct {
	claims []bool
	held   bool
	ttl    time.Duration
	setErr error
	ttlErr error

	setCalls int
	ttlCalls int
	key      string
	expiry   time.Duration
}

func (f *fakeSlots) SetNX(_ context.Context, key string, _ any, expiration time.Duration) *redis.BoolCmd {
	f.setCalls++
	f.key = key
	f.expiry = expiration

	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}

	claimed := !f.held
	if f.setCalls <= len(f.claims) {
		claimed = f.claims[f.setCalls-1]
	}

	return redis.NewBoolResult(claimed, nil)
}

func (f *fakeSlots) PTTL(_ context.Context, _ string) *redis.DurationCmd {
	f.ttlCalls++
	return redis.NewDurationResult(f.ttl, f.ttlErr)
}

func newThrottle(store slotStore, interval time.Duration) *throttle {
	return &throttle{conn: store, key: throttleSlotKey("etherscan"), interval: interval}
}

func TestThrottleSlotKey(t *testing.T) {
	assert.Equal(t, "throttle:slot:etherscan", throttleSlotKey("etherscan"))
	assert.Equal(t, "throttle:slot:etherscan:1", throttleSlotKey("etherscan:1"))
}

func TestThrottle(t *testing.T) {
	t.Run("uses the namespaced key", func(t *testing.T) {
		th := (&client{}).Throttle("etherscan", time.Second)

		assert.Equal(t, "throttle:slot:etherscan", th.key)
		assert.Equal(t, time.Second, th.interval)
	})

	t.Run("non-positive interval never touches redis", func(t *testing.T) {
		store := &fakeSlots{}

		require.NoError(t, newThrottle(store, 0).Wait(t.Context()))
		assert.Zero(t, store.setCalls)
	})

	t.Run("free slot is claimed for one interval", func(t *testing.T) {
		store := &fakeSlots{}

		require.NoError(t, newThrottle(store, 200*time.Millisecond).Wait(t.Context()))

		assert.Equal(t, 1, store.setCalls)
		assert.Zero(t, store.ttlCalls)
		assert.Equal(t, "throttle:slot:etherscan", store.key)
		assert.Equal(t, 200*time.Millisecond, store.expiry)
	})

	t.Run("held slot waits for its remaining lifetime", func(t *testing.T) {
		store := &fakeSlots{claims: []bool{false}, ttl: 30 * time.Millisecond}

		start := time.Now()
		require.NoError(t, newThrottle(store, time.Second).Wait(t.Context()))

		assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
		assert.Equal(t, 2, store.setCalls)
		assert.Equal(t, 1, store.ttlCalls)
	})

	t.Run("slot without a ttl is retried after a millisecond", func(t *testing.T) {
		// PTTL reports -2 when the key expired between the two calls.
		store := &fakeSlots{claims: []bool{false, false}, ttl: -2}

		require.NoError(t, newThrottle(store, time.Second).Wait(t.Context()))

		assert.Equal(t, 3, store.setCalls)
		assert.Equal(t, 2, store.ttlCalls)
	})

	t.Run("honors context cancellation while waiting", func(t *testing.T) {
		store := &fakeSlots{held: true, ttl: time.Hour}

		ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
		defer cancel()

		err := newThrottle(store, time.Second).Wait(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, store.setCalls)
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		errConn := errors.New("connection refused")
		store := &fakeSlots{setErr: errConn}

		assert.ErrorIs(t, newThrottle(store, time.Second).Wait(t.Context()), errConn)
	})

	t.Run("ttl lookup failure is returned", func(t *testing.T) {
		errConn := errors.New("connection reset")
		store := &fakeSlots{held: true, ttlErr: errConn}

		assert.ErrorIs(t, newThrottle(store, time.Second).Wait(t.Context()), errConn)
		assert.Equal(t, 1, store.ttlCalls)
	})
}
