package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryCache is the in-process CacheRepository used when redis is off. It
// holds at most maxEntries values, evicting the least recently used, and
// drops entries older than ttl. A zero ttl keeps entries until evicted.
type MemoryCache struct {
	lru *expirable.LRU[string, string]
}

func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		lru: expirable.NewLRU[string, string](maxEntries, nil, ttl),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	return m.lru.Get(key)
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.lru.Add(key, value)
	return nil
}

func (m *MemoryCache) Len() int {
	return m.lru.Len()
}
