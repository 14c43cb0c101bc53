package catalog

import (
	"fmt"
	"strings"

	"github.com/fixturematch/backend/internal/domain"
)

// Snapshot is one immutable catalog version paired with its override table.
// It is built once, published wholesale, and never patched in place, so any
// number of resolutions can read it concurrently without locking.
type Snapshot struct {
	version    string
	byID       map[string]*domain.Product
	byCategory map[domain.Category][]*domain.Product
	overrides  map[overrideKey][]domain.OverrideEntry
}

type overrideKey struct {
	subjectID string
	category  domain.Category
}

// NewSnapshot indexes the given products and overrides into a snapshot.
// Products keep their per-category input order. Duplicate ids across the
// whole catalog are rejected: id is the primary key for every lookup.
func NewSnapshot(version string, products []domain.Product, overrides []domain.OverrideEntry) (*Snapshot, error) {
	s := &Snapshot{
		version:    version,
		byID:       make(map[string]*domain.Product, len(products)),
		byCategory: make(map[domain.Category][]*domain.Product),
		overrides:  make(map[overrideKey][]domain.OverrideEntry, len(overrides)),
	}

	for i := range products {
		p := &products[i]
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			continue // a row without an id cannot participate in matching
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		s.byID[p.ID] = p
		s.byCategory[p.Category] = append(s.byCategory[p.Category], p)
	}

	for _, entry := range overrides {
		key := overrideKey{subjectID: strings.TrimSpace(entry.SubjectID), category: entry.Category}
		s.overrides[key] = append(s.overrides[key], entry)
	}

	return s, nil
}

// Get returns the product with the given id, or domain.ErrProductNotFound.
func (s *Snapshot) Get(id string) (*domain.Product, error) {
	p, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// ListByCategory returns the category's products in insertion order.
// Callers must not mutate the returned slice.
func (s *Snapshot) ListByCategory(category domain.Category) []*domain.Product {
	return s.byCategory[category]
}

// Overrides returns the override entries for a subject/category pair.
func (s *Snapshot) Overrides(subjectID string, category domain.Category) []domain.OverrideEntry {
	return s.overrides[overrideKey{subjectID: strings.TrimSpace(subjectID), category: category}]
}

// Version identifies this snapshot.
func (s *Snapshot) Version() string {
	return s.version
}

// Len returns the total number of products across all categories.
func (s *Snapshot) Len() int {
	return len(s.byID)
}
