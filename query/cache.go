package query

import (
	"fmt"
	"sync"

	"github.com/mj1618/ariatest/dom"
)

// CacheStats is a snapshot of one cache's counters. Evictions stay zero
// under the current policy: entries are only removed by an explicit clear,
// which also resets the counters.
type CacheStats struct {
	Hits      int `yaml:"hits"      json:"hits"`
	Misses    int `yaml:"misses"    json:"misses"`
	Evictions int `yaml:"evictions" json:"evictions"`
}

// HitRate returns hits/(hits+misses), or 0 when no lookups happened yet.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (s CacheStats) String() string {
	return fmt.Sprintf("hits=%d misses=%d hit_rate=%.1f%% evictions=%d",
		s.Hits, s.Misses, s.HitRate()*100, s.Evictions)
}

// listKey identifies one cached traversal. Containers are compared by
// identity: two structurally equal trees are distinct entries.
type listKey struct {
	container dom.Node
	skipRoot  bool
}

// elementListCache memoizes full traversal results per container. Entries
// reflect the tree shape at the moment of first caching; trees are treated
// as immutable once built, so entries never go stale in practice.
type elementListCache struct {
	mu      sync.Mutex
	entries map[listKey][]*dom.Element
	stats   CacheStats
}

func newElementListCache() *elementListCache {
	return &elementListCache{entries: make(map[listKey][]*dom.Element)}
}

func (c *elementListCache) get(container dom.Node, skipRoot bool) ([]*dom.Element, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elements, ok := c.entries[listKey{container, skipRoot}]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return elements, ok
}

func (c *elementListCache) set(container dom.Node, skipRoot bool, elements []*dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[listKey{container, skipRoot}] = elements
}

func (c *elementListCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[listKey][]*dom.Element)
	c.stats = CacheStats{}
}

func (c *elementListCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *elementListCache) snapshot() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// roleEntry distinguishes "computed, no role" from "has role". Absence from
// the map is the third state, "never computed".
type roleEntry struct {
	role string
	none bool
}

// roleCache memoizes computed roles per element, including negative results,
// keyed by element identity.
type roleCache struct {
	mu      sync.Mutex
	entries map[*dom.Element]roleEntry
	stats   CacheStats
}

func newRoleCache() *roleCache {
	return &roleCache{entries: make(map[*dom.Element]roleEntry)}
}

// get returns the cached role for el. cached is false when the role was
// never computed; none is true when it was computed and the element has no
// role.
func (c *roleCache) get(el *dom.Element) (role string, none, cached bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[el]
	if !ok {
		c.stats.Misses++
		return "", false, false
	}
	c.stats.Hits++
	return entry.role, entry.none, true
}

func (c *roleCache) set(el *dom.Element, role string, none bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[el] = roleEntry{role: role, none: none}
}

func (c *roleCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[*dom.Element]roleEntry)
	c.stats = CacheStats{}
}

func (c *roleCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *roleCache) snapshot() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
