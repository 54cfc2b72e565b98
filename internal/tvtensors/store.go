package tvtensors

import (
	"runtime"
	"sync"
	"weak"
)

// metadataStore is the side table associating a live entity's identity
// with its metadata record. The underlying tensor storage has no room for
// extra fields, so the record lives out-of-band, keyed by a weak pointer:
// the store never keeps an entity alive, and a GC cleanup removes the
// entry once the entity is collected.
//
// The mutex exists only because cleanups run on a runtime-owned goroutine;
// it does not make the wider entity API concurrency-safe.
type metadataStore struct {
	mu      sync.RWMutex
	entries map[weak.Pointer[TVTensor]]*Metadata
}

var store = &metadataStore{entries: make(map[weak.Pointer[TVTensor]]*Metadata)}

// attach records meta for tv and schedules removal when tv is collected.
func (s *metadataStore) attach(tv *TVTensor, meta *Metadata) {
	if meta == nil {
		return
	}
	key := weak.Make(tv)
	s.mu.Lock()
	s.entries[key] = meta
	s.mu.Unlock()

	runtime.AddCleanup(tv, func(k weak.Pointer[TVTensor]) {
		s.mu.Lock()
		delete(s.entries, k)
		s.mu.Unlock()
	}, key)
}

// lookup returns the record for tv, or nil when the kind carries none.
func (s *metadataStore) lookup(tv *TVTensor) *Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[weak.Make(tv)]
}

// size returns the number of live entries.
func (s *metadataStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
