// SPDX-License-Identifier: EPL-2.0

package analysis

import "sync"

// Cache memoizes analyses by track id. Because Analyze is deterministic,
// concurrent recomputation for the same id is harmless: any writer's result
// equals any other's, so the cache takes whichever lands last rather than
// coordinating computation.
type Cache struct {
	mtx     sync.RWMutex
	entries map[string]TrackAnalysis
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]TrackAnalysis),
	}
}

// Get returns the cached analysis for a track id, if present.
func (c *Cache) Get(id string) (TrackAnalysis, bool) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	a, ok := c.entries[id]
	return a, ok
}

// Put stores an analysis for a track id, replacing any previous entry.
func (c *Cache) Put(id string, a TrackAnalysis) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.entries[id] = a
}

// GetOrCompute returns the cached analysis for id, computing and storing
// it via compute on a miss. compute runs outside the cache lock so a slow
// analysis never blocks readers of other tracks.
func (c *Cache) GetOrCompute(id string, compute func() TrackAnalysis) TrackAnalysis {
	if a, ok := c.Get(id); ok {
		return a
	}
	a := compute()
	c.Put(id, a)
	return a
}

// Delete drops a track's cached analysis.
func (c *Cache) Delete(id string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	delete(c.entries, id)
}

// Len reports the number of cached analyses.
func (c *Cache) Len() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return len(c.entries)
}
