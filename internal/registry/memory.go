package registry

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// cell keys are "<path>\x00<contactKey>"; transcript paths never contain NUL.
const keySep = "\x00"

// MemoryStore is an in-memory Store for tests and one-shot runs where no
// mapping should survive the process.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the display name for a contact key, if recorded.
func (s *MemoryStore) Get(path, contactKey string) (string, bool) {
	if v, found := s.cache.Get(path + keySep + contactKey); found {
		return v.(string), true
	}
	return "", false
}

// Put records a display name for a contact key.
func (s *MemoryStore) Put(path, contactKey, displayName string) error {
	s.cache.Set(path+keySep+contactKey, displayName, gocache.NoExpiration)
	return nil
}

// Partition returns a copy of all mappings for one transcript path.
func (s *MemoryStore) Partition(path string) map[string]string {
	out := make(map[string]string)
	prefix := path + keySep
	for key, item := range s.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			out[strings.TrimPrefix(key, prefix)] = item.Object.(string)
		}
	}
	return out
}

// UsedNames lists every display name in the store.
func (s *MemoryStore) UsedNames() []string {
	items := s.cache.Items()
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Object.(string))
	}
	return names
}

// Save is a no-op: the memory store is not durable.
func (s *MemoryStore) Save() error {
	return nil
}
