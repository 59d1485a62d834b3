package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// CacheEntry represents a cached candle series.
type CacheEntry struct {
	Candles   []model.Candle
	ExpiresAt time.Time
}

// KlinesCache provides in-memory caching for Binance klines responses so
// repeated simulations over the same window do not hammer the exchange.
//
// Intended for local development: enable with ENABLE_KLINES_CACHE=true.
// It is automatically disabled when API_ENV=production.
type KlinesCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
}

var globalCache *KlinesCache
var cacheOnce sync.Once

// GetCache returns the global cache instance if caching is enabled.
// Returns nil if caching is disabled.
func GetCache() *KlinesCache {
	if os.Getenv("ENABLE_KLINES_CACHE") != "true" {
		return nil
	}
	if os.Getenv("API_ENV") == "production" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := 1 * time.Hour
		if ttlStr := os.Getenv("KLINES_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}

		globalCache = &KlinesCache{
			store: make(map[string]*CacheEntry),
			ttl:   ttl,
		}

		go globalCache.cleanup()
	})

	return globalCache
}

// Get retrieves a cached series if available and not expired.
func (c *KlinesCache) Get(key string) ([]model.Candle, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Candles, true
}

// Set stores a series in the cache.
func (c *KlinesCache) Set(key string, candles []model.Candle) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Candles:   candles,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache.
func (c *KlinesCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// cleanup periodically removes expired entries.
func (c *KlinesCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.mu.Unlock()
	}
}

// cacheKeyFor creates a deterministic cache key from fetch parameters.
func cacheKeyFor(params FetchParams) string {
	keyStr := fmt.Sprintf("%s:%s:%s:%s",
		params.Symbol,
		params.Interval,
		params.Start.Format("2006-01-02T15:04:05"),
		params.End.Format("2006-01-02T15:04:05"),
	)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
