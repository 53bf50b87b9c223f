package api

import (
	"sync"
	"time"
)

// queryCache holds collection reads keyed by (entity tag, encoded filter).
// It is a derived, disposable projection of remote state: the only mutation
// discipline is whole-tag invalidation, never partial patching, so a refetch
// always replaces the prior collection atomically.
type queryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]map[string]cacheEntry
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		ttl:     ttl,
		entries: make(map[string]map[string]cacheEntry),
	}
}

// get returns the cached value for (tag, key) if it is still fresh.
func (q *queryCache) get(tag, key string) (any, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	entry, ok := q.entries[tag][key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// set stores a value under (tag, key), replacing any prior entry.
func (q *queryCache) set(tag, key string, value any) {
	q.mu.Lock()
	defer q.mu.Unlock()

	byKey := q.entries[tag]
	if byKey == nil {
		byKey = make(map[string]cacheEntry)
		q.entries[tag] = byKey
	}
	byKey[key] = cacheEntry{value: value, expiresAt: time.Now().Add(q.ttl)}
}

// invalidate drops every cached read for the tag, regardless of which
// filter combination produced it.
func (q *queryCache) invalidate(tag string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.entries, tag)
}
