package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fixturematch/backend/internal/catalog"
	"github.com/fixturematch/backend/internal/domain"
)

// Directory is the public entry point for compatibility resolution: given
// any product id it determines the category and fans out to the match engine
// for every other category, assembling the per-category results. Lookups are
// pure reads against the current snapshot and may run concurrently.
type Directory struct {
	store    *catalog.Store
	engine   *Engine
	cache    domain.CacheRepository
	cacheTTL time.Duration
}

// DirectoryConfig holds construction options for the directory.
type DirectoryConfig struct {
	// CacheTTL bounds how long a resolved lookup may be served from cache.
	// Cache keys include the snapshot version, so a catalog publish never
	// serves stale results regardless of TTL.
	CacheTTL time.Duration
}

// NewDirectory creates a compatibility directory. cache may be nil to
// disable result caching.
func NewDirectory(store *catalog.Store, engine *Engine, cache domain.CacheRepository, config DirectoryConfig) *Directory {
	ttl := config.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Directory{
		store:    store,
		engine:   engine,
		cache:    cache,
		cacheTTL: ttl,
	}
}

// FindCompatibles resolves every category reachable from the subject,
// forward and backward. Categories that are not applicable, or computed
// empty with no reason, are omitted from the output entirely.
func (d *Directory) FindCompatibles(ctx context.Context, subjectID string) (*domain.Lookup, error) {
	snap, err := d.store.Current()
	if err != nil {
		return nil, err
	}

	subject, err := snap.Get(subjectID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("lookup:%s:%s", snap.Version(), subject.ID)
	if d.cache != nil {
		if cached, err := d.cache.Get(ctx, cacheKey); err == nil {
			if lookup, ok := cached.(*domain.Lookup); ok {
				return lookup, nil
			}
		}
	}

	lookup := &domain.Lookup{Product: subject, Compatibles: []domain.MatchResult{}}
	for _, target := range domain.AllCategories {
		if target == subject.Category {
			continue
		}
		result := d.engine.Match(snap, subject, target)
		if !result.Applicable {
			continue
		}
		if len(result.Matches) == 0 && result.Reason == "" {
			continue
		}
		lookup.Compatibles = append(lookup.Compatibles, result)
	}

	zap.L().Debug("resolved compatibles",
		zap.String("subject", subject.ID),
		zap.String("category", string(subject.Category)),
		zap.Int("categories", len(lookup.Compatibles)),
		zap.String("snapshot", snap.Version()),
	)

	if d.cache != nil {
		if err := d.cache.Set(ctx, cacheKey, lookup, d.cacheTTL); err != nil {
			zap.L().Warn("lookup cache write failed", zap.String("subject", subject.ID), zap.Error(err))
		}
	}
	return lookup, nil
}

// Match runs a single-category query against the current snapshot, used by
// override-testing and diagnostic tooling. Unlike FindCompatibles it returns
// not-applicable results as-is so tooling can tell the cases apart.
func (d *Directory) Match(ctx context.Context, subjectID string, target domain.Category) (domain.MatchResult, error) {
	if !knownCategory(target) {
		return domain.MatchResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, target)
	}

	snap, err := d.store.Current()
	if err != nil {
		return domain.MatchResult{}, err
	}
	subject, err := snap.Get(subjectID)
	if err != nil {
		return domain.MatchResult{}, err
	}
	return d.engine.Match(snap, subject, target), nil
}

func knownCategory(c domain.Category) bool {
	for _, known := range domain.AllCategories {
		if c == known {
			return true
		}
	}
	return false
}
