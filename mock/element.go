package mock

import (
	"context"
	"fmt"
	"sync"

	"gitlab.com/screener/screenk"
)

// Element handle backed by a static attribute map
type Element struct {
	mu sync.Mutex

	Label string            // shows up in String() for test failures
	Attrs map[string]string // absent keys are absent attributes
	Stale bool              // when set every Attribute call returns ErrStaleElement

	AttributeFn     func(ctx context.Context, name string) (string, bool, error)
	AttributeCalled int
}

// Attribute calls AttributeFn when set, otherwise reads Attrs
func (e *Element) Attribute(ctx context.Context, name string) (string, bool, error) {
	e.mu.Lock()
	e.AttributeCalled++
	fn, stale := e.AttributeFn, e.Stale
	e.mu.Unlock()

	if fn != nil {
		return fn(ctx, name)
	}
	if stale {
		return "", false, screenk.ErrStaleElement
	}
	v, ok := e.Attrs[name]
	return v, ok, nil
}

// SetAttr for later calls
func (e *Element) SetAttr(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
}

func (e *Element) String() string {
	return fmt.Sprintf("mock<%s>", e.Label)
}
