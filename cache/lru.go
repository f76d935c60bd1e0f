// Package cache implements a least recently used cache on top of the doubly
// linked list of this module.
//
// The cache keeps its entries in a dlist.List ordered from the most to the
// least recently used, and indexes the list nodes by key. Holding on to the
// nodes is what makes promotions and deletions O(1): the node of an entry is
// removed from wherever it sits in the list without walking it.
//
// The cache is unsafe to use concurrently from multiple goroutines.
package cache

import "github.com/segmentio/sequence/container/dlist"

// LRU caches entries and tracks the least recently used ones as candidates for
// eviction.
//
// The zero-value is a valid, empty cache.
type LRU[K comparable, V any] struct {
	index map[K]*dlist.Node[entry[K, V]]
	queue dlist.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Len returns the number of entries in the cache.
func (lru *LRU[K, V]) Len() int {
	return lru.queue.Len()
}

// Insert inserts an entry in the cache, returning the previous value
// associated with the key and whether it was replaced. The entry becomes the
// most recently used one.
func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if lru.index == nil {
		lru.index = make(map[K]*dlist.Node[entry[K, V]])
	}
	if n, ok := lru.index[key]; ok {
		if e, err := lru.queue.Remove(n); err == nil {
			previous, replaced = e.value, true
		}
	}
	lru.index[key] = lru.queue.AddFirst(entry[K, V]{key: key, value: value})
	return previous, replaced
}

// Lookup returns the value associated with key, promoting the entry to most
// recently used.
func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	n, ok := lru.index[key]
	if ok && lru.queue.MoveToFront(n) == nil {
		value, found = n.Value().value, true
	}
	return value, found
}

// Delete removes the entry for key from the cache.
func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	n, ok := lru.index[key]
	if ok {
		delete(lru.index, key)
		if e, err := lru.queue.Remove(n); err == nil {
			value, deleted = e.value, true
		}
	}
	return value, deleted
}

// Evict removes the least recently used entry from the cache and returns it.
func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	e, err := lru.queue.RemoveLast()
	if err == nil {
		delete(lru.index, e.key)
		key, value, evicted = e.key, e.value, true
	}
	return key, value, evicted
}

// Range calls f for each entry in the cache, from the most to the least
// recently used. If f returns false, iteration stops.
func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	lru.queue.Range(func(e entry[K, V]) bool { return f(e.key, e.value) })
}
