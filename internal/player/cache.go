package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment when the cached data structure changes to auto-invalidate
// old entries.
const CacheSchemaVersion = "1.0"

// cachedPlayerEntry wraps a player with version metadata for cache invalidation
type cachedPlayerEntry struct {
	Version  string                `json:"version"`
	Player   *domain.PlayerBalance `json:"player"`
	CachedAt time.Time             `json:"cached_at"`
}

// playerCache provides an in-memory LRU cache for player lookups with
// time-based expiration. Balances are never served from here; only the
// identity and blacklist columns are safe to cache.
type playerCache struct {
	lru *expirable.LRU[string, *cachedPlayerEntry]
}

func newPlayerCache(size int, ttl time.Duration) *playerCache {
	return &playerCache{
		lru: expirable.NewLRU[string, *cachedPlayerEntry](size, nil, ttl),
	}
}

// Get retrieves a player from the cache. Entries with a mismatched schema
// version are invalidated on read.
func (c *playerCache) Get(playerID string) (*domain.PlayerBalance, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}
	return entry.Player, true
}

// Set stores a player in the cache with the current schema version
func (c *playerCache) Set(playerID string, player *domain.PlayerBalance) {
	c.lru.Add(playerID, &cachedPlayerEntry{
		Version:  CacheSchemaVersion,
		Player:   player,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a player from the cache
func (c *playerCache) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

// Purge clears the whole cache
func (c *playerCache) Purge() {
	c.lru.Purge()
}
