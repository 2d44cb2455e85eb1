package registry

import "sync"

// Registry is a thread-safe mapping from keys to values, guarded by a
// sync.RWMutex for read-heavy access patterns.
//
// switchkit uses it as the shared state container mapping switch identifiers
// to their logical state: each controller only ever writes its own key, but
// the registry itself is handed out to arbitrary external readers, so every
// method is safe for concurrent use.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[K]V),
	}
}

// Set stores a value under key, overwriting any previous entry.
func (r *Registry[K, V]) Set(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = value
}

// Get returns the value for key and whether an entry exists.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// Has reports whether an entry exists for key.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Delete removes the entry for key. Deleting an absent key is a no-op.
//
// The switch controllers never call Delete; it exists for external
// collaborators that own registry cleanup.
func (r *Registry[K, V]) Delete(key K) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Len returns the number of entries.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns all keys in unspecified order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]K, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Snapshot returns a copy of the current entries. Mutating the returned map
// does not affect the registry.
func (r *Registry[K, V]) Snapshot() map[K]V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[K]V, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out
}

// Range calls fn for each entry until fn returns false.
//
// Range iterates over a snapshot, so Set and Delete may be called from fn
// without affecting the current iteration.
func (r *Registry[K, V]) Range(fn func(K, V) bool) {
	for k, v := range r.Snapshot() {
		if !fn(k, v) {
			return
		}
	}
}
