package domain

import (
	"context"
	"time"
)

// CatalogReader is the read-only view of one catalog snapshot. All methods
// are safe for unbounded concurrent use; the snapshot behind them never
// mutates.
type CatalogReader interface {
	// Get returns the product with the given id, or ErrProductNotFound.
	Get(id string) (*Product, error)

	// ListByCategory returns the category's products in catalog insertion
	// order. The store never re-sorts; ranking is applied by the engine.
	ListByCategory(category Category) []*Product

	// Overrides returns the override entries for a subject/category pair,
	// versioned together with the catalog.
	Overrides(subjectID string, category Category) []OverrideEntry

	// Version identifies the snapshot, for cache keying.
	Version() string
}

// CacheRepository defines the interface for caching resolved lookups.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
