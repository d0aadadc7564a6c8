package locale

import (
	"sync"
	"time"
)

// CacheConfig holds configuration for cache behavior.
type CacheConfig struct {
	// TTL is the time-to-live for cached bundles.
	// Set to 0 for no expiration (manual invalidation only).
	TTL time.Duration
}

// DefaultCacheConfig returns the default caching behavior: bundles are
// held until Invalidate is called. Locale data changes rarely.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{TTL: 0}
}

// CachedStore is a read-through cache over any Store. After the first
// load, generation requests are served from memory; lookups that fail
// are not cached, so a missing locale becomes visible as soon as its
// data arrives in the backing store.
type CachedStore struct {
	inner  Store
	config CacheConfig

	mu      sync.RWMutex
	bundles map[string]cachedBundle
	infos   []Info
	infosAt time.Time
}

type cachedBundle struct {
	bundle   *Bundle
	cachedAt time.Time
}

// NewCachedStore wraps inner with a read-through cache.
func NewCachedStore(inner Store, config CacheConfig) *CachedStore {
	return &CachedStore{
		inner:   inner,
		config:  config,
		bundles: make(map[string]cachedBundle),
	}
}

func (c *CachedStore) fresh(at time.Time) bool {
	if at.IsZero() {
		return false
	}
	if c.config.TTL > 0 {
		return time.Since(at) <= c.config.TTL
	}
	return true
}

// Locales lists the available locales, cached.
func (c *CachedStore) Locales() ([]Info, error) {
	c.mu.RLock()
	if c.fresh(c.infosAt) {
		out := make([]Info, len(c.infos))
		copy(out, c.infos)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	infos, err := c.inner.Locales()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.infos = infos
	c.infosAt = time.Now()
	c.mu.Unlock()

	out := make([]Info, len(infos))
	copy(out, infos)
	return out, nil
}

// Bundle returns the dataset for a locale code, cached.
func (c *CachedStore) Bundle(code string) (*Bundle, error) {
	c.mu.RLock()
	cached, ok := c.bundles[code]
	c.mu.RUnlock()
	if ok && c.fresh(cached.cachedAt) {
		return cached.bundle, nil
	}

	b, err := c.inner.Bundle(code)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.bundles[code] = cachedBundle{bundle: b, cachedAt: time.Now()}
	c.mu.Unlock()

	return b, nil
}

// Invalidate clears the cache, forcing a reload on next access.
func (c *CachedStore) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bundles = make(map[string]cachedBundle)
	c.infos = nil
	c.infosAt = time.Time{}
}

// Ping checks the backing store.
func (c *CachedStore) Ping() error { return c.inner.Ping() }

// Close closes the backing store.
func (c *CachedStore) Close() error { return c.inner.Close() }
