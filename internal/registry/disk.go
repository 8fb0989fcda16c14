package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// DiskStore is the file-backed Store used in production. The on-disk shape is
// a JSON object of transcript path to contact-to-pseudonym object, loaded
// once at open and written back by Save.
type DiskStore struct {
	path string

	mu   sync.Mutex
	data map[string]map[string]string
}

// OpenDiskStore loads the store file at path, or starts empty if the file
// does not exist yet.
func OpenDiskStore(path string) (*DiskStore, error) {
	s := &DiskStore{
		path: path,
		data: make(map[string]map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read pseudonym store: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse pseudonym store %s: %w", path, err)
	}

	return s, nil
}

// Get returns the display name for a contact key, if recorded.
func (s *DiskStore) Get(path, contactKey string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.data[path]
	if !ok {
		return "", false
	}
	name, ok := group[contactKey]
	return name, ok
}

// Put records a display name for a contact key.
func (s *DiskStore) Put(path, contactKey, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.data[path]
	if !ok {
		group = make(map[string]string)
		s.data[path] = group
	}
	group[contactKey] = displayName
	return nil
}

// Partition returns a copy of all mappings for one transcript path.
func (s *DiskStore) Partition(path string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.data[path]))
	for k, v := range s.data[path] {
		out[k] = v
	}
	return out
}

// UsedNames lists every display name in the store.
func (s *DiskStore) UsedNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for _, group := range s.data {
		for _, name := range group {
			names = append(names, name)
		}
	}
	return names
}

// Save writes the store back to disk, creating the parent directory if
// needed.
func (s *DiskStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pseudonym store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("write pseudonym store: %w", err)
	}

	return nil
}
