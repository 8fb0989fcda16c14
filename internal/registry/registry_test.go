package registry

import (
	"errors"
	"math/rand"
	"testing"
)

func TestResolve_StableWithinStore(t *testing.T) {
	reg := New(NewMemoryStore(), NewPool(nil, rand.NewSource(1)))

	first, err := reg.Resolve("/chats/a.txt", "Alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := reg.Resolve("/chats/a.txt", "Alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first != second {
		t.Errorf("Expected stable resolution, got %q then %q", first, second)
	}
}

func TestResolve_Bijection(t *testing.T) {
	reg := New(NewMemoryStore(), NewPool(nil, rand.NewSource(1)))

	seen := make(map[string]string)
	for _, key := range []string{"Alice", "Bob", "Carol", "+5511999990000"} {
		name, err := reg.Resolve("/chats/a.txt", key)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", key, err)
		}
		if owner, taken := seen[name]; taken {
			t.Errorf("Display name %q allocated to both %q and %q", name, owner, key)
		}
		seen[name] = key
	}
}

func TestResolve_DeterministicOncePersisted(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Put("/chats/a.txt", "Alice", "Willa"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// A fresh registry over the same store must return the persisted name
	// and must not hand it to anyone else.
	reg := New(store, NewPool(nil, rand.NewSource(7)))

	name, err := reg.Resolve("/chats/a.txt", "Alice")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if name != "Willa" {
		t.Errorf("Expected persisted name 'Willa', got %q", name)
	}

	other, err := reg.Resolve("/chats/a.txt", "Bob")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if other == "Willa" {
		t.Error("Persisted name re-allocated to a different contact")
	}
}

func TestResolve_PartitionsAreIndependent(t *testing.T) {
	reg := New(NewMemoryStore(), NewPool(nil, rand.NewSource(3)))

	a, err := reg.Resolve("/chats/a.txt", "Alice")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	b, err := reg.Resolve("/chats/b.txt", "Alice")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// Same raw key in another transcript is a different contact and gets
	// its own pseudonym.
	if a == b {
		t.Errorf("Expected distinct names across transcript partitions, both got %q", a)
	}
}

func TestResolve_PoolExhaustionIsFatal(t *testing.T) {
	pool := NewPool([]string{"Only"}, rand.NewSource(1))
	reg := New(NewMemoryStore(), pool)

	if _, err := reg.Resolve("/chats/a.txt", "Alice"); err != nil {
		t.Fatalf("First resolve should succeed, got %v", err)
	}

	_, err := reg.Resolve("/chats/a.txt", "Bob")
	if err == nil {
		t.Fatal("Expected pool exhaustion error")
	}
	if !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("Expected ErrPoolExhausted, got %v", err)
	}
}

func TestPool_TakeWithoutReplacement(t *testing.T) {
	names := []string{"A", "B", "C"}
	pool := NewPool(names, rand.NewSource(42))

	seen := make(map[string]bool)
	for i := 0; i < len(names); i++ {
		name, err := pool.Take()
		if err != nil {
			t.Fatalf("Take %d: %v", i, err)
		}
		if seen[name] {
			t.Errorf("Name %q drawn twice", name)
		}
		seen[name] = true
	}

	if _, err := pool.Take(); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("Expected ErrPoolExhausted after draining, got %v", err)
	}
}

func TestPool_MarkUsed(t *testing.T) {
	pool := NewPool([]string{"A", "B"}, rand.NewSource(1))
	pool.MarkUsed("A")

	if pool.Remaining() != 1 {
		t.Fatalf("Expected 1 remaining, got %d", pool.Remaining())
	}

	name, err := pool.Take()
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if name != "B" {
		t.Errorf("Expected 'B', got %q", name)
	}
}
