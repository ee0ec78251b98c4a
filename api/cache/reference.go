package cache

import (
	"context"
	"fmt"
	"riftrewind/api/repositories"
	"riftrewind/pkg/redis"
	"sync"
	"time"
)

// ReferenceCache holds slow-changing reference payloads, the free champion
// rotation and the challenge configuration. Reads go memory first, then
// Redis, then the database backup, so a Redis outage degrades instead of
// breaking the analyzers that need the reference data.
type ReferenceCache struct {
	redis       *redis.RedisClient
	repository  repositories.CacheRepository
	memoryCache map[string]referenceItem
	TTL         time.Duration
	mu          sync.RWMutex
}

type referenceItem struct {
	value     string
	expiresAt time.Time
}

// ReferenceCacheDeps holds the external dependencies of the cache.
// Every field may be nil, each missing layer is simply skipped.
type ReferenceCacheDeps struct {
	Redis      *redis.RedisClient
	Repository repositories.CacheRepository
}

// NewReferenceCache creates the cache and starts it's expiration worker.
func NewReferenceCache(deps *ReferenceCacheDeps) *ReferenceCache {
	c := &ReferenceCache{
		redis:       deps.Redis,
		repository:  deps.Repository,
		memoryCache: make(map[string]referenceItem),
		TTL:         30 * time.Minute,
	}

	go c.expirationWorker()

	return c
}

func (c *ReferenceCache) expirationWorker() {
	ticker := time.NewTicker(c.TTL)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, item := range c.memoryCache {
			if now.After(item.expiresAt) {
				delete(c.memoryCache, key)
			}
		}
		c.mu.Unlock()
	}
}

// Get reads a reference payload, falling through the layers in order.
// A hit on a lower layer repopulates the memory cache.
func (c *ReferenceCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	item, exists := c.memoryCache[key]
	c.mu.RUnlock()
	if exists && time.Now().Before(item.expiresAt) {
		return item.value, nil
	}

	if c.redis != nil {
		value, err := c.redis.Get(ctx, key)
		if err == nil {
			c.storeMemory(key, value)
			return value, nil
		}
	}

	if c.repository != nil {
		value, err := c.repository.GetKey(key)
		if err == nil {
			c.storeMemory(key, value)
			return value, nil
		}
	}

	return "", fmt.Errorf("reference key %s not available on any layer", key)
}

// Set writes a reference payload through every available layer.
// Layer failures are ignored, the memory copy always succeeds.
func (c *ReferenceCache) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	c.storeMemory(key, value)

	if c.redis != nil {
		// Best effort, the database backup covers a Redis outage.
		_ = c.redis.Set(ctx, key, value, ttl)
	}

	if c.repository != nil {
		_ = c.repository.SetKey(key, value)
	}
}

func (c *ReferenceCache) storeMemory(key string, value string) {
	c.mu.Lock()
	c.memoryCache[key] = referenceItem{
		value:     value,
		expiresAt: time.Now().Add(c.TTL),
	}
	c.mu.Unlock()
}
