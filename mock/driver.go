package mock

import (
	"context"
	"sync"

	"gitlab.com/screener/screenk"
)

// Driver records every structural query it is asked to execute
type Driver struct {
	mu sync.Mutex

	FindElementsFn     func(ctx context.Context, q screenk.Query) ([]screenk.Element, error)
	FindElementsCalled int
	Queries            []screenk.Query
}

// FindElements records q and calls FindElementsFn
func (d *Driver) FindElements(ctx context.Context, q screenk.Query) ([]screenk.Element, error) {
	d.mu.Lock()
	d.FindElementsCalled++
	d.Queries = append(d.Queries, q)
	fn := d.FindElementsFn
	d.mu.Unlock()
	return fn(ctx, q)
}

// Calls returns how many queries were executed so far
func (d *Driver) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.FindElementsCalled
}

// LastQuery executed, zero Query if none
func (d *Driver) LastQuery() screenk.Query {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Queries) == 0 {
		return screenk.Query{}
	}
	return d.Queries[len(d.Queries)-1]
}
