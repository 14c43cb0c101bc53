package usecase

import (
	"fmt"

	"github.com/fixturematch/backend/internal/domain"
)

// Category-pair rules are data, not code branches: each pair maps to an
// ordered predicate chain, predicates live in a registry, and adding a pair
// is a table change. SelfCheck validates the table at startup so a malformed
// pair fails loudly before the first request.

// predicate evaluates one compatibility rule for a subject/candidate pair.
// The subject is always the product the lookup was initiated from.
type predicate func(subject, candidate *domain.Product) bool

type predicateID string

const (
	predSeriesCompatible     predicateID = "series-compatible"
	predDoorWidthContainment predicateID = "door-width-containment"
	predDoorHeightFit        predicateID = "door-height-fit"
	predAlcoveInstallation   predicateID = "alcove-installation"
	predShowerDoorKind       predicateID = "shower-door-kind"
	predWallDimensionFit     predicateID = "wall-dimension-fit"
)

// predicateRegistry resolves predicate identifiers to implementations.
var predicateRegistry = map[predicateID]predicate{
	predSeriesCompatible: func(subject, candidate *domain.Product) bool {
		return seriesCompatible(subject.Series, candidate.Series)
	},
	predDoorWidthContainment: doorWidthContainment,
	predDoorHeightFit:        doorHeightFit,
	predAlcoveInstallation:   alcoveInstallation,
	predShowerDoorKind:       showerDoorKind,
	predWallDimensionFit:     wallDimensionFit,
}

type categoryPair struct {
	subject domain.Category
	target  domain.Category
}

// chainTable maps each defined category pair to its ordered predicate chain.
// Both directions of every pair are listed; predicates resolve door/opening/
// wall roles by category, so a chain means the same thing either way.
var chainTable = map[categoryPair][]predicateID{
	{domain.CategoryBathtubs, domain.CategoryTubDoors}: {predAlcoveInstallation, predDoorWidthContainment, predSeriesCompatible},
	{domain.CategoryTubDoors, domain.CategoryBathtubs}: {predAlcoveInstallation, predDoorWidthContainment, predSeriesCompatible},

	{domain.CategoryTubShowers, domain.CategoryTubDoors}: {predDoorWidthContainment, predDoorHeightFit, predSeriesCompatible},
	{domain.CategoryTubDoors, domain.CategoryTubShowers}: {predDoorWidthContainment, predDoorHeightFit, predSeriesCompatible},

	{domain.CategoryShowers, domain.CategoryShowerDoors}: {predAlcoveInstallation, predShowerDoorKind, predDoorWidthContainment, predDoorHeightFit, predSeriesCompatible},
	{domain.CategoryShowerDoors, domain.CategoryShowers}: {predAlcoveInstallation, predShowerDoorKind, predDoorWidthContainment, predDoorHeightFit, predSeriesCompatible},

	{domain.CategoryShowerBases, domain.CategoryShowerDoors}: {predAlcoveInstallation, predShowerDoorKind, predDoorWidthContainment, predSeriesCompatible},
	{domain.CategoryShowerDoors, domain.CategoryShowerBases}: {predAlcoveInstallation, predShowerDoorKind, predDoorWidthContainment, predSeriesCompatible},

	{domain.CategoryBathtubs, domain.CategoryWalls}: {predSeriesCompatible, predWallDimensionFit},
	{domain.CategoryWalls, domain.CategoryBathtubs}: {predSeriesCompatible, predWallDimensionFit},

	{domain.CategoryShowerBases, domain.CategoryWalls}: {predSeriesCompatible, predWallDimensionFit},
	{domain.CategoryWalls, domain.CategoryShowerBases}: {predSeriesCompatible, predWallDimensionFit},
}

// comboPartners marks combo-eligible pairs: when matching subject→target,
// each surviving wall is additionally paired with the subject's surviving
// doors from the partner category.
var comboPartners = map[categoryPair]domain.Category{
	{domain.CategoryBathtubs, domain.CategoryWalls}:    domain.CategoryTubDoors,
	{domain.CategoryShowerBases, domain.CategoryWalls}: domain.CategoryShowerDoors,
}

// chainFor returns the predicate chain for a category pair. ok=false means
// the pair is "not applicable", a recognized non-error distinct from a
// computed empty result.
func chainFor(subject, target domain.Category) ([]predicateID, bool) {
	chain, ok := chainTable[categoryPair{subject, target}]
	return chain, ok
}

// SelfCheck validates the chain configuration: every referenced predicate is
// registered, every pair has a mirror with an identical chain, and every
// combo partner pair resolves to a defined chain. Configuration failures are
// programming errors and abort startup.
func SelfCheck() error {
	for pair, chain := range chainTable {
		if len(chain) == 0 {
			return fmt.Errorf("%w: empty chain for %s -> %s", domain.ErrInvalidCategoryPair, pair.subject, pair.target)
		}
		for _, id := range chain {
			if _, ok := predicateRegistry[id]; !ok {
				return fmt.Errorf("%w: unregistered predicate %q in %s -> %s", domain.ErrInvalidCategoryPair, id, pair.subject, pair.target)
			}
		}
		mirror, ok := chainTable[categoryPair{pair.target, pair.subject}]
		if !ok {
			return fmt.Errorf("%w: %s -> %s has no reverse chain", domain.ErrInvalidCategoryPair, pair.subject, pair.target)
		}
		if len(mirror) != len(chain) {
			return fmt.Errorf("%w: %s -> %s and its reverse differ", domain.ErrInvalidCategoryPair, pair.subject, pair.target)
		}
		for i := range chain {
			if mirror[i] != chain[i] {
				return fmt.Errorf("%w: %s -> %s and its reverse differ", domain.ErrInvalidCategoryPair, pair.subject, pair.target)
			}
		}
	}
	for pair, partner := range comboPartners {
		if _, ok := chainTable[pair]; !ok {
			return fmt.Errorf("%w: combo pair %s -> %s has no chain", domain.ErrInvalidCategoryPair, pair.subject, pair.target)
		}
		if _, ok := chainTable[categoryPair{pair.subject, partner}]; !ok {
			return fmt.Errorf("%w: combo partner %s -> %s has no chain", domain.ErrInvalidCategoryPair, pair.subject, partner)
		}
	}
	return nil
}
