package screenk

import (
	"context"
	"time"
)

// Element is an opaque handle to a live DOM node, owned by the Driver.
type Element interface {
	// Attribute returns the current value of name. ok is false when the
	// attribute is absent. For "value" the live form value is returned.
	Attribute(ctx context.Context, name string) (value string, ok bool, err error)
}

// Driver executes structural queries against the live document. Results are
// in document order and executing a query never changes the page.
type Driver interface {
	FindElements(ctx context.Context, q Query) ([]Element, error)
}

// DriverFunc adapts a plain function to a Driver
type DriverFunc func(ctx context.Context, q Query) ([]Element, error)

// FindElements calls f
func (f DriverFunc) FindElements(ctx context.Context, q Query) ([]Element, error) {
	return f(ctx, q)
}

// PollFunc is evaluated on every poll tick
type PollFunc func(ctx context.Context) ([]Element, error)

// Poller calls fn every interval until it returns at least one element or
// timeout elapses. Timing out returns ErrTimedOut, an error from fn is
// returned as is.
type Poller interface {
	Poll(ctx context.Context, fn PollFunc, timeout, interval time.Duration) ([]Element, error)
}
