// Package memory provides an in-process string cache used for the
// announcement text. Entries never expire on their own; the announcement
// worker refreshes or deletes them explicitly.
package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is an in-memory key-value cache safe for concurrent use.
type Cache struct {
	store *gocache.Cache
}

// New creates a new in-memory cache.
func New() *Cache {
	return &Cache{
		store: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the cached value for key and whether it was present.
func (c *Cache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	if !ok {
		return "", false
	}

	return s, true
}

// Set stores value under key, replacing any previous value.
func (c *Cache) Set(_ context.Context, key string, value string) {
	c.store.Set(key, value, gocache.NoExpiration)
}

// Delete removes key from the cache.
func (c *Cache) Delete(_ context.Context, key string) {
	c.store.Delete(key)
}
