package mock

import (
	"context"
	"time"

	"gitlab.com/screener/screenk"
)

// Poller lets tests drive Find without waiting on real time
type Poller struct {
	PollFn     func(ctx context.Context, fn screenk.PollFunc, timeout, interval time.Duration) ([]screenk.Element, error)
	PollCalled bool

	Timeout  time.Duration // last timeout passed in
	Interval time.Duration // last interval passed in
}

// Poll records the timing arguments and calls PollFn
func (p *Poller) Poll(ctx context.Context, fn screenk.PollFunc, timeout, interval time.Duration) ([]screenk.Element, error) {
	p.PollCalled = true
	p.Timeout = timeout
	p.Interval = interval
	return p.PollFn(ctx, fn, timeout, interval)
}
