package registry

import (
	"fmt"
	"sync"
)

// Registry resolves raw contact keys to pseudonyms against an injected Store.
// Resolution is deterministic once a store entry exists; randomness is
// confined to first-time allocation. Within one store partition the mapping
// is a bijection: a contact key always yields the same name, and no two keys
// share one.
type Registry struct {
	store Store
	pool  *Pool
	mu    sync.Mutex
}

// New creates a registry over the given store and pool. Names already
// recorded in the store are withdrawn from the pool up front, so they cannot
// be allocated to a different contact.
func New(store Store, pool *Pool) *Registry {
	if pool == nil {
		pool = NewPool(nil, nil)
	}
	for _, name := range store.UsedNames() {
		pool.MarkUsed(name)
	}
	return &Registry{store: store, pool: pool}
}

// Resolve returns the display name for a raw contact key in the given
// transcript, allocating and persisting a fresh pseudonym on first sight.
// The read-modify-write is serialized: pseudonym allocation must be
// deterministic and race-free across concurrent transcripts.
func (r *Registry) Resolve(path, contactKey string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name, ok := r.store.Get(path, contactKey); ok {
		return name, nil
	}

	name, err := r.pool.Take()
	if err != nil {
		return "", fmt.Errorf("resolve contact in %s: %w", path, err)
	}

	if err := r.store.Put(path, contactKey, name); err != nil {
		return "", fmt.Errorf("persist pseudonym: %w", err)
	}

	return name, nil
}

// Save flushes the underlying store.
func (r *Registry) Save() error {
	return r.store.Save()
}
