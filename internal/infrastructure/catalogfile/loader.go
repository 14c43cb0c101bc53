package catalogfile

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fixturematch/backend/internal/catalog"
	"github.com/fixturematch/backend/internal/domain"
)

// The loader stands in for the external ingestion pipeline: it reads an
// already-normalized catalog file and builds a complete snapshot from it.
// Optional fields the file omits stay absent; they are never coerced to
// present zero values.

// File is the on-disk catalog shape: products grouped per category in
// display order, plus the override table that versions with them.
type File struct {
	Categories map[domain.Category][]domain.Product `json:"categories"`
	Overrides  []domain.OverrideEntry               `json:"overrides,omitempty"`
}

// Load reads a catalog file and builds a snapshot from it. The snapshot
// version is derived from the file contents, so republishing an unchanged
// file keeps cache keys stable.
func Load(path string) (*catalog.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decoding catalog file %s: %w", path, err)
	}

	// Flatten in the fixed category order so snapshot iteration order is
	// independent of JSON map ordering.
	var products []domain.Product
	for _, category := range domain.AllCategories {
		for _, p := range file.Categories[category] {
			p.Category = category
			products = append(products, p)
		}
	}

	sum := sha256.Sum256(raw)
	version := hex.EncodeToString(sum[:8])

	snap, err := catalog.NewSnapshot(version, products, file.Overrides)
	if err != nil {
		return nil, fmt.Errorf("building catalog snapshot: %w", err)
	}
	return snap, nil
}
