package cache

import (
	"context"
	"sync"
	"time"
)

// In-memory cache with short TTLs, used in front of Redis for composed
// responses that are expensive to rebuild.
type MemCache struct {
	memoryCache   sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

type memCacheItem struct {
	value     any
	expiresAt time.Time
}

// NewMemCache creates the memory cache and starts it's cleanup worker.
func NewMemCache() *MemCache {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemCache{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(5 * time.Minute),
		ctx:           ctx,
	}
	mc.startCleanupWorker()

	return mc
}

func (mc *MemCache) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup removes every expired key.
func (mc *MemCache) cleanup() {
	now := time.Now()
	mc.memoryCache.Range(func(key, value any) bool {
		item := value.(*memCacheItem)
		if now.After(item.expiresAt) {
			mc.memoryCache.Delete(key)
		}
		return true
	})
}

// Close shuts the cleanup worker down.
func (mc *MemCache) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns the value for a key, nil when absent or expired.
func (mc *MemCache) Get(key string) any {
	value, exists := mc.memoryCache.Load(key)
	if !exists {
		return nil
	}

	item := value.(*memCacheItem)
	if time.Now().After(item.expiresAt) {
		mc.memoryCache.Delete(key)
		return nil
	}

	return item.value
}

// Set stores a key with the given TTL.
func (mc *MemCache) Set(key string, value any, ttl time.Duration) {
	mc.memoryCache.Store(key, &memCacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}

// Delete drops a key regardless of expiration.
func (mc *MemCache) Delete(key string) {
	mc.memoryCache.Delete(key)
}
