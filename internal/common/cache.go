package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	*cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{cache.New(expirationTime, cleanupTime)}
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

// Cache keys for the derived read-only views. The aggregations recompute from
// the full collection on every miss, so entries are kept short-lived.
const (
	CacheKeyFeaturedBlogs     = "blogs:featured"
	CacheKeyRecentBlogs       = "blogs:recent"
	CacheKeyPopularCategories = "blogs:popular_categories"
	CacheKeyTrendingBlogs     = "blogs:trending"
)

func CacheKeyBlogsCount() string {
	return "blogs:count"
}
