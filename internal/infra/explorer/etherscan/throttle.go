package etherscan

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMinInterval is the minimum spacing between two API requests.
const DefaultMinInterval = 200 * time.Millisecond

// Throttle spaces out API requests. Wait blocks until the next request may be
// sent or ctx is done.
type Throttle interface {
	Wait(ctx context.Context) error
}

// IntervalThrottle lets one request through per interval within a process.
type IntervalThrottle struct {
	limiter *rate.Limiter
}

var _ Throttle = (*IntervalThrottle)(nil)

// NewIntervalThrottle returns a throttle enforcing at least interval between
// requests. The first request is never delayed. A non-positive interval
// disables throttling.
func NewIntervalThrottle(interval time.Duration) *IntervalThrottle {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &IntervalThrottle{limiter: rate.NewLimiter(limit, 1)}
}

func (t *IntervalThrottle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
