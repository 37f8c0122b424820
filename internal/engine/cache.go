package engine

import "sync"

// ModelCache keeps fitted per-user models between estimator calls so
// repeated estimates in one session skip the refit. It is strictly an
// optimization: estimates never depend on cache presence, and entries
// for different users never interfere. A nil *ModelCache is valid and
// means "refit every time".
type ModelCache struct {
	mu      sync.RWMutex
	entries map[uint]cachedModel
}

type cachedModel struct {
	model      *linearModel
	confidence float64
	trainedOn  int
}

func NewModelCache() *ModelCache {
	return &ModelCache{entries: make(map[uint]cachedModel)}
}

// lookup returns a cached model still within its retrain budget. A
// shrunk history (snapshot older than the cached fit) also misses.
func (c *ModelCache) lookup(userID uint, sampleCount, retrainAfter int) (cachedModel, bool) {
	if c == nil {
		return cachedModel{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[userID]
	if !ok {
		return cachedModel{}, false
	}
	if sampleCount < e.trainedOn || sampleCount >= e.trainedOn+retrainAfter {
		return cachedModel{}, false
	}
	return e, true
}

func (c *ModelCache) store(userID uint, e cachedModel) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = e
}

// Invalidate drops the cached model for one user, forcing a refit on
// the next estimate.
func (c *ModelCache) Invalidate(userID uint) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}

// Reset drops every cached model.
func (c *ModelCache) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint]cachedModel)
}
