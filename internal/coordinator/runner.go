// internal/coordinator/runner.go
package coordinator

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run drives poll cycles at the given interval until ctx is cancelled.
// Cycles run inline on this goroutine: a tick that fires while a cycle is
// still in flight is dropped by the ticker, so a slow device never
// accumulates a request backlog. A failed cycle is logged and the loop
// waits for the next tick.
func (c *Coordinator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := c.Refresh(); err != nil {
				c.log.Warn("poll cycle failed", zap.Error(err))
			}
		}
	}
}
