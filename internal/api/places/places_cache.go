package places

import (
	"container/list"
	"sync"
	"time"

	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

const (
	// DefaultCacheCapacity bounds the number of cached search results.
	DefaultCacheCapacity = 500
	// DefaultCacheTTL is how long a cached search result stays fresh.
	DefaultCacheTTL = time.Hour
)

type cacheEntry struct {
	key       string
	places    []types.PlaceInfo
	expiresAt time.Time
}

// PlaceCache is a capacity-bounded LRU cache with per-entry TTL for place
// search results. When capacity is exceeded the least recently used entry is
// evicted; entries past their TTL read as misses even before eviction.
// Safe for concurrent use. Construct one per process and inject it into the
// places service so tests get isolated instances.
type PlaceCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // front = most recently used

	now func() time.Time // overridable in tests
}

func NewPlaceCache(capacity int, ttl time.Duration) *PlaceCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &PlaceCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// Get returns the cached places for key, or found=false on a miss.
// An expired entry is removed and reported as a miss.
func (c *PlaceCache) Get(key string) ([]types.PlaceInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.order.Remove(elem)
		delete(c.entries, key)
		return nil, false
	}
	c.order.MoveToFront(elem)
	return entry.places, true
}

// Set stores places under key, evicting the least recently used entry if the
// cache is full. An existing entry is refreshed in place.
func (c *PlaceCache) Set(key string, places []types.PlaceInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.places = places
		entry.expiresAt = c.now().Add(c.ttl)
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{
		key:       key,
		places:    places,
		expiresAt: c.now().Add(c.ttl),
	})
}

// Len reports the current number of entries, expired or not.
func (c *PlaceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
