package util

import (
	"container/list"
	"sync"
)

// LRU is a bounded cache with least-recently-used eviction. Safe for
// concurrent use.
type LRU[K comparable, V any] struct {
	mtx   sync.Mutex
	cache map[K]*list.Element
	order *list.List
	cap   int
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU returns a new LRU cache with the given capacity.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		cache: make(map[K]*list.Element),
		order: list.New(),
		cap:   capacity,
	}
}

// Put adds a new key-value pair to the cache, updating the value if the key
// already exists.
func (lru *LRU[K, V]) Put(key K, value V) {
	lru.mtx.Lock()
	defer lru.mtx.Unlock()
	if elem, ok := lru.cache[key]; ok {
		elem.Value.(*lruEntry[K, V]).value = value
		lru.order.MoveToFront(elem)
		return
	}
	lru.cache[key] = lru.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	for lru.order.Len() > lru.cap {
		oldest := lru.order.Back()
		lru.order.Remove(oldest)
		delete(lru.cache, oldest.Value.(*lruEntry[K, V]).key)
	}
}

// Get returns the value associated with the given key. The second return
// value is true if the key exists in the cache.
func (lru *LRU[K, V]) Get(key K) (V, bool) {
	lru.mtx.Lock()
	defer lru.mtx.Unlock()
	if elem, ok := lru.cache[key]; ok {
		lru.order.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	var v V
	return v, false
}

// Len returns the number of cached entries.
func (lru *LRU[K, V]) Len() int {
	lru.mtx.Lock()
	defer lru.mtx.Unlock()
	return lru.order.Len()
}

// Reset clears the cache.
func (lru *LRU[K, V]) Reset() {
	lru.mtx.Lock()
	defer lru.mtx.Unlock()
	lru.cache = make(map[K]*list.Element)
	lru.order.Init()
}
