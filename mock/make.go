package mock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"gitlab.com/screener/screenk"
)

// MakeMockElements returns n elements labelled el0..elN-1
func MakeMockElements(n int) []screenk.Element {
	els := make([]screenk.Element, n)
	for i := 0; i < n; i++ {
		els[i] = &Element{Label: fmt.Sprintf("el%d", i), Attrs: map[string]string{}}
	}
	return els
}

// MakeMockDriver answers every query from results, unknown queries match nothing
func MakeMockDriver(results map[screenk.Query][]screenk.Element) *Driver {
	d := &Driver{}
	d.FindElementsFn = func(ctx context.Context, q screenk.Query) ([]screenk.Element, error) {
		els, ok := results[q]
		if !ok {
			return []screenk.Element{}, nil
		}
		out := make([]screenk.Element, len(els))
		copy(out, els)
		return out, nil
	}
	return d
}

// MakeSequenceDriver returns seq[i] on the i'th call whatever the query,
// repeating the last entry once the sequence is exhausted.
func MakeSequenceDriver(seq ...[]screenk.Element) *Driver {
	var calls int32
	d := &Driver{}
	d.FindElementsFn = func(ctx context.Context, q screenk.Query) ([]screenk.Element, error) {
		i := int(atomic.AddInt32(&calls, 1)) - 1
		if len(seq) == 0 {
			return []screenk.Element{}, nil
		}
		if i >= len(seq) {
			i = len(seq) - 1
		}
		return seq[i], nil
	}
	return d
}

// MakeErrorDriver fails every query with err
func MakeErrorDriver(err error) *Driver {
	d := &Driver{}
	d.FindElementsFn = func(ctx context.Context, q screenk.Query) ([]screenk.Element, error) {
		return nil, err
	}
	return d
}

// MakeImmediatePoller evaluates fn up to attempts times back to back and
// reports ErrTimedOut if every attempt came back empty.
func MakeImmediatePoller(attempts int) *Poller {
	p := &Poller{}
	p.PollFn = func(ctx context.Context, fn screenk.PollFunc, timeout, interval time.Duration) ([]screenk.Element, error) {
		for i := 0; i < attempts; i++ {
			els, err := fn(ctx)
			if err != nil {
				return nil, err
			}
			if len(els) > 0 {
				return els, nil
			}
		}
		return nil, screenk.ErrTimedOut
	}
	return p
}
