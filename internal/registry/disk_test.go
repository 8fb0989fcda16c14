package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store", "pseudonyms.json")

	s, err := OpenDiskStore(path)
	if err != nil {
		t.Fatalf("OpenDiskStore: %v", err)
	}

	if err := s.Put("/chats/a.txt", "Alice", "Willa"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put("/chats/a.txt", "Bob", "Magnus"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put("/chats/b.txt", "Alice", "Fern"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := OpenDiskStore(path)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}

	name, ok := reopened.Get("/chats/a.txt", "Alice")
	if !ok || name != "Willa" {
		t.Errorf("Expected ('Willa', true), got (%q, %v)", name, ok)
	}
	if _, ok := reopened.Get("/chats/a.txt", "Carol"); ok {
		t.Error("Expected miss for unknown contact")
	}

	part := reopened.Partition("/chats/a.txt")
	if len(part) != 2 {
		t.Errorf("Expected 2 entries in partition, got %d", len(part))
	}

	used := reopened.UsedNames()
	if len(used) != 3 {
		t.Errorf("Expected 3 used names, got %v", used)
	}
}

func TestDiskStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	s, err := OpenDiskStore(path)
	if err != nil {
		t.Fatalf("OpenDiskStore: %v", err)
	}
	if len(s.UsedNames()) != 0 {
		t.Errorf("Expected empty store, got %v", s.UsedNames())
	}
}

func TestDiskStore_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := OpenDiskStore(path); err == nil {
		t.Error("Expected error for corrupt store file")
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Put("/chats/a.txt", "Alice", "Willa"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	name, ok := s.Get("/chats/a.txt", "Alice")
	if !ok || name != "Willa" {
		t.Errorf("Expected ('Willa', true), got (%q, %v)", name, ok)
	}

	part := s.Partition("/chats/a.txt")
	if part["Alice"] != "Willa" {
		t.Errorf("Expected partition to hold Alice, got %v", part)
	}

	if err := s.Save(); err != nil {
		t.Errorf("Save should be a no-op, got %v", err)
	}
}
