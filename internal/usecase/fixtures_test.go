package usecase

import (
	"testing"

	"github.com/fixturematch/backend/internal/catalog"
	"github.com/fixturematch/backend/internal/domain"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func mustSnapshot(t *testing.T, products []domain.Product, overrides []domain.OverrideEntry) *catalog.Snapshot {
	t.Helper()
	snap, err := catalog.NewSnapshot("test-v1", products, overrides)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return snap
}

func fixtureBathtub(id, series string, maxDoorWidth float64) domain.Product {
	return domain.Product{
		ID:           id,
		Category:     domain.CategoryBathtubs,
		Name:         "Test Alcove Bathtub " + id,
		Series:       series,
		Installation: domain.InstallAlcove,
		Dimensions: domain.Dimensions{
			MaxDoorWidth: fp(maxDoorWidth),
			Length:       fp(60),
			Width:        fp(32),
		},
	}
}

func fixtureTubDoor(id, name, series string, minWidth, maxWidth float64, ranking *int) domain.Product {
	return domain.Product{
		ID:       id,
		Category: domain.CategoryTubDoors,
		Name:     name,
		Series:   series,
		Dimensions: domain.Dimensions{
			MinWidth: fp(minWidth),
			MaxWidth: fp(maxWidth),
		},
		Ranking: ranking,
	}
}

func fixtureWall(id, name, series string, length, width float64, ranking *int) domain.Product {
	return domain.Product{
		ID:       id,
		Category: domain.CategoryWalls,
		Name:     name,
		Series:   series,
		Dimensions: domain.Dimensions{
			Length: fp(length),
			Width:  fp(width),
		},
		Ranking: ranking,
	}
}

func matchIDs(matches []domain.Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Product.ID)
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
