package common

import (
	"runtime"
	"sync"
	"time"

	"k8s.io/klog/v2"
)

// cacheEntry pairs a cached value with its insertion time.
type cacheEntry struct {
	value interface{}
	added int64
}

// TTLCache represents a super simple TTL cache.
type TTLCache struct {
	entries map[string]cacheEntry
	mLock   sync.Mutex
}

// NewCache initializes a new TTL based cache that actively evicts old entries.
func NewCache(ttl int, tick time.Duration) (*TTLCache, chan struct{}) {
	cache := &TTLCache{entries: make(map[string]cacheEntry)}
	done := make(chan struct{})
	if tick <= 0 || ttl <= 0 || tick > MaxSolutionCacheTimeout || ttl > MaxSolutionCacheTTL {
		klog.Error("invalid timing values.")
		return cache, done
	}

	go func() {
		ticker := time.NewTicker(time.Millisecond * tick)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				cache.mLock.Lock()
				for k, v := range cache.entries {
					if now.UnixMilli()-v.added > int64(ttl) {
						delete(cache.entries, k)
					}
				}
				cache.mLock.Unlock()
			case <-done:
				return
			}
			runtime.Gosched()
		}
	}()
	return cache, done
}

// Put adds an entry to the Cache.
func (c *TTLCache) Put(key string, value interface{}) {
	c.mLock.Lock()
	c.entries[key] = cacheEntry{value, time.Now().UnixMilli()}
	c.mLock.Unlock()
}

// Get returns an entry if it still exists.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mLock.Lock()
	defer c.mLock.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return entry.value, true
}
