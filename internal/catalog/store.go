package catalog

import (
	"errors"
	"sync/atomic"
)

// ErrNoSnapshot is returned when the store is read before the first publish.
var ErrNoSnapshot = errors.New("no catalog snapshot published")

// Store holds the current catalog snapshot behind an atomic pointer.
// Readers always see either the old complete snapshot or the new complete
// snapshot, never a partially updated one.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store. Publish must run before the first read.
func NewStore() *Store {
	return &Store{}
}

// Publish swaps in a new snapshot. Resolutions already running keep the
// snapshot they started with.
func (st *Store) Publish(s *Snapshot) {
	st.current.Store(s)
}

// Current returns the published snapshot.
func (st *Store) Current() (*Snapshot, error) {
	s := st.current.Load()
	if s == nil {
		return nil, ErrNoSnapshot
	}
	return s, nil
}
