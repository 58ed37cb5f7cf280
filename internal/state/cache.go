package state

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cellar-tui/cellar/internal/brew"
)

// DefaultCacheSize bounds the details cache. Eviction is least-recently-used
// and fires synchronously inside Put.
const DefaultCacheSize = 64

// Cache is the bounded details cache. Peek serves render paths without
// disturbing recency; Get serves the dispatcher's pre-flight check and
// promotes; Put overlays onto any existing record and promotes.
type Cache struct {
	entries *lru.Cache[string, brew.Details]
}

// NewCache builds a cache holding at most capacity records. Non-positive
// capacities fall back to DefaultCacheSize.
func NewCache(capacity int) Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	entries, err := lru.New[string, brew.Details](capacity)
	if err != nil {
		// lru.New only rejects non-positive sizes.
		panic(err)
	}
	return Cache{entries: entries}
}

// Peek returns the record for name without promoting it.
func (c Cache) Peek(name string) (brew.Details, bool) {
	return c.entries.Peek(name)
}

// Get returns the record for name, marking it most recently used.
func (c Cache) Get(name string) (brew.Details, bool) {
	return c.entries.Get(name)
}

// Put stores a record under name, overlaying it onto any existing record
// first so a basic result never blanks out previously loaded sections.
func (c Cache) Put(name string, d brew.Details) {
	if existing, ok := c.entries.Peek(name); ok {
		d = mergeDetails(existing, d)
	}
	c.entries.Add(name, d)
}

// Len returns the number of cached records.
func (c Cache) Len() int {
	return c.entries.Len()
}

// mergeDetails overlays incoming onto existing. The scalar fields and the
// installed versions always come from incoming; Deps and Uses come from
// incoming only when that fetch actually loaded them (non-nil).
func mergeDetails(existing, incoming brew.Details) brew.Details {
	merged := incoming
	if incoming.Deps == nil {
		merged.Deps = existing.Deps
	}
	if incoming.Uses == nil {
		merged.Uses = existing.Uses
	}
	return merged
}
