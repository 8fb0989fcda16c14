package registry

import (
	"math/rand"
	"sync"
)

// defaultNames is the built-in pseudonym pool: human-readable names with no
// relation to any real participant.
var defaultNames = []string{
	"Amara", "Amelia", "Anders", "Anouk", "Ariel", "Arlo", "Astrid", "Aurora",
	"Basil", "Beatrix", "Bruno", "Caspian", "Cecilia", "Clara", "Cosmo",
	"Dahlia", "Dante", "Delphine", "Django", "Eamon", "Edith", "Eloise",
	"Ember", "Emrys", "Esme", "Fern", "Fiora", "Flynn", "Freya", "Gideon",
	"Greta", "Gulliver", "Hazel", "Hector", "Imogen", "Indigo", "Ines",
	"Isadora", "Jasper", "Juniper", "Kai", "Lenore", "Leopold", "Linnea",
	"Lorcan", "Lucinda", "Magnus", "Maeve", "Marlowe", "Matilda", "Milo",
	"Mireille", "Nadia", "Nikolai", "Noor", "Octavia", "Odette", "Orion",
	"Oswald", "Pearl", "Phineas", "Piper", "Quentin", "Ramona", "Rasmus",
	"Rhea", "Roscoe", "Rosalind", "Sage", "Saoirse", "Sebastian", "Selene",
	"Sylvie", "Tamsin", "Theodora", "Thorin", "Ursula", "Vera", "Viggo",
	"Willa", "Wren", "Xavier", "Yara", "Yusuf", "Zelda", "Zephyr",
}

// Pool hands out pseudonyms drawn at random without replacement. A name is
// never reused while capacity remains; exhaustion surfaces as
// ErrPoolExhausted.
type Pool struct {
	mu   sync.Mutex
	free []string
	used map[string]bool
	rng  *rand.Rand
}

// NewPool creates a pool over the given names, or the built-in list if nil.
// The optional source seeds the draw order; pass nil for a time-seeded pool.
func NewPool(names []string, src rand.Source) *Pool {
	if names == nil {
		names = defaultNames
	}

	free := make([]string, len(names))
	copy(free, names)

	var rng *rand.Rand
	if src != nil {
		rng = rand.New(src)
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &Pool{
		free: free,
		used: make(map[string]bool, len(names)),
		rng:  rng,
	}
}

// Take draws a random unused name and marks it used.
func (p *Pool) Take() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.free) == 0 {
		return "", ErrPoolExhausted
	}

	i := p.rng.Intn(len(p.free))
	name := p.free[i]
	p.free[i] = p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.used[name] = true

	return name, nil
}

// MarkUsed withdraws a name from the pool without drawing it, so names
// already persisted in a store are never allocated again.
func (p *Pool) MarkUsed(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.used[name] {
		return
	}
	p.used[name] = true

	for i, n := range p.free {
		if n == name {
			p.free[i] = p.free[len(p.free)-1]
			p.free = p.free[:len(p.free)-1]
			return
		}
	}
}

// Remaining reports how many names are still available.
func (p *Pool) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
