package catalog

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ritualnet/backend/internal/domain"
)

// itemCache provides an in-memory LRU cache for item lookups. Catalog items
// are immutable outside catalog management, so a short TTL is enough to pick
// up out-of-band catalog edits without a cache bus.
type itemCache struct {
	lru *expirable.LRU[string, *domain.Item]
}

// newItemCache creates a new item cache with the specified size and TTL.
func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[string, *domain.Item](size, nil, ttl),
	}
}

// Get retrieves an item from the cache.
func (c *itemCache) Get(itemID int64) (*domain.Item, bool) {
	return c.lru.Get(strconv.FormatInt(itemID, 10))
}

// Set stores an item in the cache.
func (c *itemCache) Set(item *domain.Item) {
	c.lru.Add(strconv.FormatInt(item.ID, 10), item)
}

// Clear removes all entries from the cache.
func (c *itemCache) Clear() {
	c.lru.Purge()
}
