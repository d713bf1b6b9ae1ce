// Package cache holds rendered post bodies in memory, in front of the blob store.
package cache

import (
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

type BodyCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

// NewBodyCache creates a cache of sizeMegabytes. A zero ttl keeps entries until they are evicted.
func NewBodyCache(sizeMegabytes int, ttl time.Duration) *BodyCache {
	return &BodyCache{
		cache: freecache.NewCache(sizeMegabytes * megabyte),
		ttl:   ttl,
	}
}

func (c *BodyCache) Get(key string) ([]byte, bool) {
	body, err := c.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *BodyCache) Set(key string, body []byte) {
	if err := c.cache.Set([]byte(key), body, int(c.ttl.Seconds())); err != nil {
		// too large entries are simply not cached
		log.Debugf("body cache: skip caching [%s]: %s", key, err)
	}
}

func (c *BodyCache) Delete(key string) {
	c.cache.Del([]byte(key))
}

func (c *BodyCache) Clear() {
	c.cache.Clear()
}

func (c *BodyCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
