// Package registry resolves raw contact identifiers from transcripts to
// stable pseudonymous display names. The persisted mapping is an injected
// Store keyed by (absolute transcript path, raw contact key); the registry
// itself holds no hidden global state.
package registry

import "errors"

// ErrPoolExhausted is returned when no unused pseudonym remains. This is a
// fatal configuration error: ingestion cannot continue without display names.
var ErrPoolExhausted = errors.New("pseudonym pool exhausted")

// Store is the persistence layer for the contact-to-pseudonym map. Get and
// Put operate on one (transcript path, contact key) cell; Save makes the map
// durable. Implementations must be safe for concurrent use: batch ingestion
// runs transcripts in parallel against disjoint path partitions.
type Store interface {
	Get(path, contactKey string) (string, bool)
	Put(path, contactKey, displayName string) error

	// Partition returns a copy of all mappings recorded for one
	// transcript path.
	Partition(path string) map[string]string

	// UsedNames lists every display name recorded anywhere in the store,
	// so the pool never re-allocates a persisted name.
	UsedNames() []string

	Save() error
}
