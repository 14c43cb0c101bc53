package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/fixturematch/backend/internal/catalog"
	"github.com/fixturematch/backend/internal/domain"
	"github.com/fixturematch/backend/internal/infrastructure/cache"
)

func directoryFixture(t *testing.T, products []domain.Product, overrides []domain.OverrideEntry) *Directory {
	t.Helper()
	store := catalog.NewStore()
	store.Publish(mustSnapshot(t, products, overrides))
	return NewDirectory(store, NewEngine(NewOverrideResolver()), nil, DirectoryConfig{})
}

func goldenProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "BT-1",
			Category:     domain.CategoryBathtubs,
			Name:         "Exhibit 60 x 30 Alcove Bathtub",
			Series:       "MAAX",
			Installation: domain.InstallAlcove,
			Dimensions: domain.Dimensions{
				MaxDoorWidth: fp(57),
				Length:       fp(60),
				Width:        fp(30),
			},
			Ranking: ip(5),
		},
		{
			ID:       "TD-1",
			Category: domain.CategoryTubDoors,
			Name:     "Halo Pivot Tub Door",
			Series:   "MAAX",
			Kind:     "Pivot Tub Door",
			Dimensions: domain.Dimensions{
				MinWidth:  fp(56),
				MaxWidth:  fp(59),
				MaxHeight: fp(58),
			},
			Ranking: ip(12),
		},
	}
}

func TestDirectoryFindCompatibles(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		directory := directoryFixture(t, goldenProducts(), nil)

		_, err := directory.FindCompatibles(context.Background(), "NO-SUCH-SKU")
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("FindCompatibles() error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("no snapshot published", func(t *testing.T) {
		store := catalog.NewStore()
		directory := NewDirectory(store, NewEngine(NewOverrideResolver()), nil, DirectoryConfig{})

		_, err := directory.FindCompatibles(context.Background(), "BT-1")
		if !errors.Is(err, catalog.ErrNoSnapshot) {
			t.Errorf("FindCompatibles() error = %v, want ErrNoSnapshot", err)
		}
	})

	t.Run("silent categories omitted", func(t *testing.T) {
		// Walls has a defined chain from Bathtubs but no candidates, so
		// it is omitted along with every not-applicable category.
		directory := directoryFixture(t, goldenProducts(), nil)

		lookup, err := directory.FindCompatibles(context.Background(), "BT-1")
		if err != nil {
			t.Fatalf("FindCompatibles() error = %v", err)
		}
		if len(lookup.Compatibles) != 1 {
			t.Fatalf("FindCompatibles() returned %d categories, want 1: %+v", len(lookup.Compatibles), lookup.Compatibles)
		}
		if lookup.Compatibles[0].Category != domain.CategoryTubDoors {
			t.Errorf("category = %s, want %s", lookup.Compatibles[0].Category, domain.CategoryTubDoors)
		}
	})

	t.Run("reasoned category included", func(t *testing.T) {
		products := goldenProducts()
		products[0].Incompatibilities = map[domain.Category]string{
			domain.CategoryWalls: "designed for tiled walls",
		}
		directory := directoryFixture(t, products, nil)

		lookup, err := directory.FindCompatibles(context.Background(), "BT-1")
		if err != nil {
			t.Fatalf("FindCompatibles() error = %v", err)
		}

		var walls *domain.MatchResult
		for i := range lookup.Compatibles {
			if lookup.Compatibles[i].Category == domain.CategoryWalls {
				walls = &lookup.Compatibles[i]
			}
		}
		if walls == nil {
			t.Fatal("reasoned Walls entry missing from lookup")
		}
		if walls.Reason != "designed for tiled walls" || len(walls.Matches) != 0 {
			t.Errorf("walls entry = %+v, want the curated reason and no matches", walls)
		}
	})

	t.Run("sku trimmed before lookup", func(t *testing.T) {
		directory := directoryFixture(t, goldenProducts(), nil)

		lookup, err := directory.FindCompatibles(context.Background(), "  TD-1  ")
		if err != nil {
			t.Fatalf("FindCompatibles() error = %v", err)
		}
		if lookup.Product.ID != "TD-1" {
			t.Errorf("subject id = %q, want TD-1", lookup.Product.ID)
		}
	})
}

func TestDirectoryCacheReuse(t *testing.T) {
	store := catalog.NewStore()
	store.Publish(mustSnapshot(t, goldenProducts(), nil))
	directory := NewDirectory(store, NewEngine(NewOverrideResolver()), cache.NewMemoryCache(0), DirectoryConfig{})

	ctx := context.Background()
	first, err := directory.FindCompatibles(ctx, "TD-1")
	if err != nil {
		t.Fatalf("FindCompatibles() error = %v", err)
	}
	second, err := directory.FindCompatibles(ctx, "TD-1")
	if err != nil {
		t.Fatalf("FindCompatibles() error = %v", err)
	}
	if first != second {
		t.Error("second lookup was recomputed, want the cached result")
	}

	// A new snapshot version changes the cache key, so the stale entry is
	// never served.
	fresh, err := catalog.NewSnapshot("test-v2", goldenProducts(), nil)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	store.Publish(fresh)

	third, err := directory.FindCompatibles(ctx, "TD-1")
	if err != nil {
		t.Fatalf("FindCompatibles() error = %v", err)
	}
	if third == first {
		t.Error("lookup after publish served the previous snapshot's cache entry")
	}
}

func TestDirectoryMatch(t *testing.T) {
	directory := directoryFixture(t, goldenProducts(), nil)
	ctx := context.Background()

	t.Run("unknown category", func(t *testing.T) {
		_, err := directory.Match(ctx, "BT-1", "Gazebos")
		if !errors.Is(err, domain.ErrUnknownCategory) {
			t.Errorf("Match() error = %v, want ErrUnknownCategory", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := directory.Match(ctx, "NO-SUCH-SKU", domain.CategoryTubDoors)
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("Match() error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("not-applicable pair returned as-is", func(t *testing.T) {
		result, err := directory.Match(ctx, "BT-1", domain.CategoryShowers)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if result.Applicable {
			t.Error("Match(Bathtubs, Showers) applicable = true, want false")
		}
	})

	t.Run("single category query", func(t *testing.T) {
		result, err := directory.Match(ctx, "TD-1", domain.CategoryBathtubs)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if !equalIDs(matchIDs(result.Matches), []string{"BT-1"}) {
			t.Errorf("Match() matches = %v, want [BT-1]", matchIDs(result.Matches))
		}
	})
}

func TestDirectoryLookupGolden(t *testing.T) {
	directory := directoryFixture(t, goldenProducts(), nil)

	lookup, err := directory.FindCompatibles(context.Background(), "TD-1")
	if err != nil {
		t.Fatalf("FindCompatibles() error = %v", err)
	}

	data, err := json.MarshalIndent(lookup, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tub_door_lookup", data)
}
