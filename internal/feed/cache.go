package feed

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"cie-dashboard/pkg/calendar"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 30 * time.Minute
)

// Cache holds expanded month snapshots keyed by feed and window.
type Cache = expirable.LRU[string, []calendar.Event]

// NewCache creates a Cache. Zero values pick the defaults.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return expirable.NewLRU[string, []calendar.Event](size, nil, ttl)
}

func cacheKey(feedID string, from, to calendar.Date) string {
	return feedID + "|" + from.String() + "|" + to.String()
}

// purge drops every snapshot of feedID.
func purge(c *Cache, feedID string) {
	prefix := feedID + "|"
	for _, k := range c.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.Remove(k)
		}
	}
}
