package trigger

import (
	"context"
	"time"

	"github.com/mlvx/limitwatch/internal/ports"
)

const DefaultPollInterval = 3 * time.Second

// Poll fires a cycle at a fixed interval, plus once immediately in
// case a notice is already present when watching starts.
type Poll struct {
	interval time.Duration
}

var _ ports.Trigger = (*Poll)(nil)

func NewPoll(interval time.Duration) *Poll {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Poll{interval: interval}
}

func (p *Poll) Run(ctx context.Context, cycle func(context.Context)) error {
	cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			cycle(ctx)
		}
	}
}
