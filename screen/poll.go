package screen

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
	"gitlab.com/screener/screenk"
)

// PollState of a single Find call
type PollState int8

// revive:exported
const (
	Polling PollState = iota
	Succeeded
	TimedOut
)

func (s PollState) String() string {
	switch s {
	case Polling:
		return "polling"
	case Succeeded:
		return "succeeded"
	case TimedOut:
		return "timed out"
	}
	return "unknown"
}

// TickerPoller evaluates the poll func immediately, then on every tick of a
// ticker until the deadline timer fires. One last evaluation is made when
// the deadline fires so an element showing up right on the deadline still
// counts.
type TickerPoller struct{}

// NewTickerPoller to use as the default Screen poller
func NewTickerPoller() *TickerPoller {
	return &TickerPoller{}
}

// Poll until fn returns elements, fn fails, ctx is done or timeout elapses.
func (p *TickerPoller) Poll(ctx context.Context, fn screenk.PollFunc, timeout, interval time.Duration) ([]screenk.Element, error) {
	if interval <= 0 {
		interval = screenk.DefaultPollInterval
	}
	if timeout < 0 {
		timeout = 0
	}

	logger := log.Ctx(ctx).With().Str("poll_id", uuid.NewV4().String()).Logger()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	state := Polling
	for tick := 0; ; tick++ {
		els, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		if len(els) > 0 {
			state = Succeeded
			logger.Debug().Int("tick", tick).Int("found", len(els)).Dur("elapsed", time.Since(start)).Str("state", state.String()).Msg("poll done")
			return els, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			els, err := fn(ctx)
			if err != nil {
				return nil, err
			}
			if len(els) > 0 {
				state = Succeeded
				logger.Debug().Int("tick", tick+1).Int("found", len(els)).Dur("elapsed", time.Since(start)).Str("state", state.String()).Msg("poll done")
				return els, nil
			}
			state = TimedOut
			logger.Debug().Int("ticks", tick+2).Dur("elapsed", time.Since(start)).Str("state", state.String()).Msg("poll done")
			return nil, screenk.ErrTimedOut
		case <-ticker.C:
		}
	}
}
