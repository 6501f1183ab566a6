package places

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/ai-trip-planner/internal/types"
)

func TestPlaceCache_GetSet(t *testing.T) {
	c := NewPlaceCache(10, time.Hour)

	_, found := c.Get("missing")
	assert.False(t, found)

	places := []types.PlaceInfo{{Name: "Cafe Central"}}
	c.Set("key", places)

	got, found := c.Get("key")
	require.True(t, found)
	assert.Equal(t, places, got)
}

func TestPlaceCache_TTLExpiry(t *testing.T) {
	c := NewPlaceCache(10, time.Hour)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("key", []types.PlaceInfo{{Name: "Cafe Central"}})

	// Still fresh just before the TTL boundary.
	now = now.Add(59 * time.Minute)
	_, found := c.Get("key")
	assert.True(t, found)

	// Past the TTL the entry reads as a miss and is dropped.
	now = now.Add(2 * time.Minute)
	_, found = c.Get("key")
	assert.False(t, found)
	assert.Equal(t, 0, c.Len())
}

func TestPlaceCache_LRUEviction(t *testing.T) {
	c := NewPlaceCache(3, time.Hour)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key-%d", i), []types.PlaceInfo{{Name: fmt.Sprintf("place-%d", i)}})
	}

	// Touch key-0 so key-1 becomes the least recently used.
	_, found := c.Get("key-0")
	require.True(t, found)

	c.Set("key-3", []types.PlaceInfo{{Name: "place-3"}})

	_, found = c.Get("key-1")
	assert.False(t, found, "least recently used entry should have been evicted")
	_, found = c.Get("key-0")
	assert.True(t, found)
	_, found = c.Get("key-3")
	assert.True(t, found)
	assert.Equal(t, 3, c.Len())
}

func TestPlaceCache_SetRefreshesExistingEntry(t *testing.T) {
	c := NewPlaceCache(2, time.Hour)

	c.Set("key", []types.PlaceInfo{{Name: "old"}})
	c.Set("key", []types.PlaceInfo{{Name: "new"}})
	assert.Equal(t, 1, c.Len())

	got, found := c.Get("key")
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Name)
}

func TestPlaceCache_KeyIsExactTuple(t *testing.T) {
	// Capitalization and parameter differences produce distinct keys.
	a := searchCacheKey("best restaurants in Lisbon", "", "restaurant", 4.0)
	b := searchCacheKey("Best Restaurants in Lisbon", "", "restaurant", 4.0)
	cKey := searchCacheKey("best restaurants in Lisbon", "", "restaurant", 3.5)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, cKey)
}
