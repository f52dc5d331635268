package gcdtab

import (
	"sync"
	"sync/atomic"
)

// docCache holds the nodeID of the top level #document until chrome reports
// the document changed.
type docCache struct {
	mu     sync.Mutex
	nodeID int
	stale  atomic.Bool // DOM.documentUpdated fired since nodeID was fetched
}

func (c *docCache) invalidate() {
	c.stale.Store(true)
}

// get the cached nodeID, calling fetch when there is none or it is stale.
// The stale flag is cleared before fetch runs so an update arriving during
// the fetch forces the next get to fetch again.
func (c *docCache) get(fetch func() (int, error)) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.stale.Swap(false) && c.nodeID != 0 {
		return c.nodeID, nil
	}
	nodeID, err := fetch()
	if err != nil {
		c.stale.Store(true)
		return 0, err
	}
	c.nodeID = nodeID
	return nodeID, nil
}
