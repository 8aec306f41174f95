package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/google/uuid"
)

// Cache maps tailoring inputs to previously produced draft ids. It is a flat
// in-process map: no eviction, no TTL. Entries are keyed by a hash over
// exactly the inputs that determine the draft.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]uuid.UUID
}

// NewCache creates an empty tailoring cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]uuid.UUID)}
}

// Key derives the cache key from the cleaned posting text and the profile
// checksum. Any profile edit or posting change produces a new key.
func Key(postingText, profileChecksum string) string {
	h := sha256.New()
	h.Write([]byte(postingText))
	h.Write([]byte{0}) // separator so boundaries cannot collide
	h.Write([]byte(profileChecksum))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached draft id for a key
func (c *Cache) Get(key string) (uuid.UUID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.entries[key]
	return id, ok
}

// Put records the draft id produced for a key
func (c *Cache) Put(key string, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = id
}

// Drop removes a key, used when a cached draft no longer exists in the store
func (c *Cache) Drop(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
